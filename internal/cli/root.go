package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/RMahshie/freqplan/internal/app"
	"github.com/RMahshie/freqplan/internal/config"
	"github.com/RMahshie/freqplan/internal/explorer"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	appVersion = "dev"
	appCommit  = "none"
)

// flagKeys maps persistent flags onto configuration keys
var flagKeys = map[string]string{
	"dataset":       "DATASET_PATH",
	"dataset-key":   "DATASET_S3_KEY",
	"strict":        "DATASET_STRICT",
	"style-dir":     "STYLE_DIR",
	"translate-url": "TRANSLATE_URL",
	"cache":         "CACHE_DRIVER",
	"sqlite-path":   "SQLITE_PATH",
}

// NewRootCommand builds the freqctl command tree
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "freqctl",
		Short:         "freqctl explores a radio-frequency allocation table from the terminal",
		Version:       fmt.Sprintf("%s (commit: %s)", appVersion, appCommit),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := zerolog.WarnLevel
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.String("dataset", "", "path to the allocation CSV (default data/FP_KOS_2022.csv)")
	flags.String("dataset-key", "", "object key of the allocation CSV when S3_BUCKET is set")
	flags.Bool("strict", false, "fail on any invalid row instead of skipping it")
	flags.String("style-dir", "", "directory holding horizontal.css and vertical.css")
	flags.String("translate-url", "", "LibreTranslate-compatible endpoint; terms are left untranslated when empty")
	flags.String("cache", "", "translation cache: memory, sqlite or postgres")
	flags.String("sqlite-path", "", "sqlite translation cache file")
	flags.Bool("json", false, "print results as JSON")
	flags.Bool("debug", false, "enable debug logging")

	for name, key := range flagKeys {
		_ = viper.BindPFlag(key, flags.Lookup(name))
	}

	root.AddCommand(
		newBandsCmd(),
		newLanguagesCmd(),
		newSliderCmd(),
		newSearchCmd(),
		newLookupCmd(),
		newGroupCmd(),
	)
	return root
}

// Execute runs freqctl and exits non-zero on failure
func Execute() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, failure("error:"), err)
		os.Exit(1)
	}
}

// SetVersionInfo allows the main package to inject build-time variables
func SetVersionInfo(version, commit string) {
	appVersion = version
	appCommit = commit
}

// withExplorer loads the table, runs fn and releases the cache
func withExplorer(ctx context.Context, fn func(explorer.Explorer) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	a, err := app.New(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close translation cache")
		}
	}()

	return fn(a.Explorer)
}

func jsonMode(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("json")
	return v
}
