package render

import (
	"testing"

	"github.com/jzelinskie/verinfo/pkg/report"
)

func TestEscapeLiteral(t *testing.T) {
	var table = []struct {
		input  string
		output string
	}{
		{"&", `\&`},
		{"%", `\%`},
		{"$", `\$`},
		{"#", `\#`},
		{"_", `\_`},
		{"{", `\letteropenbrace{}`},
		{"}", `\letterclosebrace{}`},
		{"~", `\lettertilde{}`},
		{"^", `\letterhat{}`},
		{`\`, `\letterbackslash{}`},
		{">", `\textgreater`},
		{"<", `\textless`},
		{"1.2.3", "1.2.3"},
		{"a&b_c", `a\&b\_c`},
	}

	for _, tt := range table {
		t.Run(tt.input, func(t *testing.T) {
			if escaped := escapeLiteral(tt.input); escaped != tt.output {
				t.Errorf("unexpected output: %s instead of %s", escaped, tt.output)
			}
		})
	}
}

func TestLatexRender(t *testing.T) {
	expected := `\begin{tabular}{|l|l|}\hline` + "\n" +
		`{\bf Software} & {\bf Version} \\ \hline\hline` + "\n" +
		`pct & 50\% \\ \hline` + "\n" +
		`\hline \multicolumn{2}{|l|}{Thu Jun 21 15:04:05 2018 UTC} \\ \hline` + "\n" +
		`\end{tabular}` + "\n"

	output, err := latexRenderer{}.Render(testReport(report.Record{Name: "pct", Version: "50%"}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if string(output) != expected {
		t.Errorf("unexpected output: %s instead of %s", output, expected)
	}
}
