package render

import (
	"strings"
	"testing"

	"github.com/jzelinskie/verinfo/pkg/report"
)

func TestHTMLRender(t *testing.T) {
	expected := "<table>" +
		"<tr><th>Software</th><th>Version</th></tr>" +
		"<tr><td>Go</td><td>go1.11 amd64 [gc]</td></tr>" +
		"<tr><td>numpy</td><td>1.2.3</td></tr>" +
		"<tr><td colspan='2'>Thu Jun 21 15:04:05 2018 UTC</td></tr>" +
		"</table>"

	output, err := htmlRenderer{}.Render(testReport())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if string(output) != expected {
		t.Errorf("unexpected output: %s instead of %s", output, expected)
	}
}

func TestHTMLRenderEscapes(t *testing.T) {
	output, err := htmlRenderer{}.Render(testReport(report.Record{Name: "weird", Version: "1<2&3>"}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	expected := "<table>" +
		"<tr><th>Software</th><th>Version</th></tr>" +
		`<tr><td>weird</td><td>1\textless2\&3\textgreater</td></tr>` +
		"<tr><td colspan='2'>Thu Jun 21 15:04:05 2018 UTC</td></tr>" +
		"</table>"
	if string(output) != expected {
		t.Errorf("unexpected output: %s instead of %s", output, expected)
	}
}

func TestHTMLRenderEscapesFullCharacterSet(t *testing.T) {
	output, err := htmlRenderer{}.Render(testReport(report.Record{
		Name:    "weird",
		Version: `50% $5 #1 a_b {x} ~ ^ \`,
	}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	cell := `<td>50\% \$5 \#1 a\_b \letteropenbrace{}x\letterclosebrace{} \lettertilde{} \letterhat{} \letterbackslash{}</td>`
	if !strings.Contains(string(output), cell) {
		t.Errorf("output is missing %s:\n%s", cell, output)
	}
}
