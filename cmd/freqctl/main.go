package main

import "github.com/RMahshie/freqplan/internal/cli"

var (
	version = "dev"
	commit  = "none"
)

func main() {
	cli.SetVersionInfo(version, commit)
	cli.Execute()
}
