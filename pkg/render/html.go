package render

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/quick"

	"github.com/jzelinskie/verinfo/pkg/report"
)

var _ Renderer = htmlRenderer{}

type htmlRenderer struct{}

func (htmlRenderer) Render(r report.Report) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString("<table>")
	b.WriteString("<tr><th>Software</th><th>Version</th></tr>")
	for _, rec := range r.Records {
		// Version values go through the same literal-character map as the
		// LaTeX table.
		fmt.Fprintf(&b, "<tr><td>%s</td><td>%s</td></tr>", rec.Name, escapeLiteral(rec.Version))
	}
	fmt.Fprintf(&b, "<tr><td colspan='2'>%s</td></tr>", r.Timestamp.Format(report.TimestampFormat))
	b.WriteString("</table>")
	return b.Bytes(), nil
}

func (htmlRenderer) Pretty(htmlBytes []byte) ([]byte, error) { return htmlBytes, nil }

func (htmlRenderer) Color(htmlBytes []byte) ([]byte, error) {
	var b bytes.Buffer
	if err := quick.Highlight(&b, string(htmlBytes), "html", ChromaFormatter(), ChromaStyle()); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func init() {
	Register("html", htmlRenderer{})
}
