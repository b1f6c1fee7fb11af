package render

import (
	"testing"

	"github.com/jzelinskie/verinfo/pkg/report"
)

func TestTextRender(t *testing.T) {
	expected := "Software versions\n" +
		"Go go1.11 amd64 [gc]\n" +
		"numpy 1.2.3\n" +
		"\n" +
		"Thu Jun 21 15:04:05 2018 UTC"

	output, err := textRenderer{}.Render(testReport())
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if string(output) != expected {
		t.Errorf("unexpected output: %q instead of %q", output, expected)
	}
}

func TestTextLeavesValuesAlone(t *testing.T) {
	value := `1<2&3> 50% \$_{}~^`
	output, err := textRenderer{}.Render(testReport(report.Record{Name: "weird", Version: value}))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	expected := "Software versions\nweird " + value + "\n\nThu Jun 21 15:04:05 2018 UTC"
	if string(output) != expected {
		t.Errorf("unexpected output: %q instead of %q", output, expected)
	}
}
