package render

import (
	"bytes"
	"fmt"

	"github.com/alecthomas/chroma/quick"

	"github.com/jzelinskie/verinfo/pkg/report"
)

var _ Renderer = latexRenderer{}

type latexRenderer struct{}

func (latexRenderer) Render(r report.Report) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(`\begin{tabular}{|l|l|}\hline` + "\n")
	b.WriteString(`{\bf Software} & {\bf Version} \\ \hline\hline` + "\n")
	for _, rec := range r.Records {
		fmt.Fprintf(&b, `%s & %s \\ \hline`+"\n", rec.Name, escapeLiteral(rec.Version))
	}
	fmt.Fprintf(&b, `\hline \multicolumn{2}{|l|}{%s} \\ \hline`+"\n", r.Timestamp.Format(report.TimestampFormat))
	b.WriteString(`\end{tabular}` + "\n")
	return b.Bytes(), nil
}

func (latexRenderer) Pretty(latexBytes []byte) ([]byte, error) { return latexBytes, nil }

func (latexRenderer) Color(latexBytes []byte) ([]byte, error) {
	var b bytes.Buffer
	if err := quick.Highlight(&b, string(latexBytes), "latex", ChromaFormatter(), ChromaStyle()); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

func init() {
	Register("latex", latexRenderer{})
	Register("tex", latexRenderer{})
}
