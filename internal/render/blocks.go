package render

import (
	"bytes"
	"html/template"
	"io"

	"github.com/RMahshie/freqplan/pkg/models"
)

// Block is one coloured allocation tile
type Block struct {
	Color string
	Term  string
	Lower float64
	Upper float64
}

var blocksTemplate = template.Must(template.New("blocks").Funcs(template.FuncMap{
	"hz":  FormatHz,
	"css": func(s string) template.CSS { return template.CSS(s) },
}).Parse(`<style>{{css .CSS}}</style>
<div class='containerSlider'>
{{- range .Blocks}}
<div style="background-color:{{css .Color}};filter: invert(5);mix-blend-mode: difference;">
    <h3>{{.Term}}</h3>
    <p><b>{{hz .Lower}} Hz - {{hz .Upper}} Hz</b></p>
</div>
{{- end}}
</div>
`))

// WriteBlocks renders blocks and the given style sheet as an HTML fragment.
// Terms are escaped; the style sheet and colours are trusted configuration.
func WriteBlocks(w io.Writer, css string, blocks []Block) error {
	return blocksTemplate.Execute(w, struct {
		CSS    string
		Blocks []Block
	}{CSS: css, Blocks: blocks})
}

// Blocks renders blocks into a byte slice
func Blocks(css string, blocks []Block) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteBlocks(&buf, css, blocks); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Rows drops the comment column from every record
func Rows(records []models.FrequencyRecord) []models.AllocationRow {
	out := make([]models.AllocationRow, len(records))
	for i, r := range records {
		out[i] = r.Row()
	}
	return out
}
