package render

import (
	"bytes"
	"fmt"

	"github.com/jzelinskie/verinfo/pkg/report"
)

var _ Renderer = textRenderer{}

type textRenderer struct{}

func (textRenderer) Render(r report.Report) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("Software versions\n")
	for _, rec := range r.Records {
		fmt.Fprintf(&b, "%s %s\n", rec.Name, rec.Version)
	}
	fmt.Fprintf(&b, "\n%s", r.Timestamp.Format(report.TimestampFormat))
	return b.Bytes(), nil
}

func (textRenderer) Pretty(textBytes []byte) ([]byte, error) { return textBytes, nil }
func (textRenderer) Color(textBytes []byte) ([]byte, error)  { return textBytes, nil }

func init() {
	Register("text", textRenderer{})
	Register("plain", textRenderer{})
}
