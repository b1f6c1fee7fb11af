package report

import (
	"strings"
	"testing"
	"time"
)

func TestBaseline(t *testing.T) {
	baseline := Baseline()

	if len(baseline) != 3 {
		t.Fatalf("unexpected baseline length: %d instead of 3", len(baseline))
	}

	expectedNames := []string{"Go", "verinfo", "OS"}
	for i, name := range expectedNames {
		if baseline[i].Name != name {
			t.Errorf("unexpected baseline record %d: %s instead of %s", i, baseline[i].Name, name)
		}
		if baseline[i].Version == "" {
			t.Errorf("baseline record %s has an empty version", name)
		}
	}

	if strings.Contains(baseline[2].Version, "-") {
		t.Errorf("platform descriptor contains an unnormalized separator: %s", baseline[2].Version)
	}
}

func TestJSONObjectOrder(t *testing.T) {
	var r Report
	r.Append("b", "2")
	r.Append("a", "1")
	r.Append("b", "3")

	versions, ok := r.JSONObject()["Software versions"].([]interface{})
	if !ok {
		t.Fatal("missing Software versions key")
	}
	if len(versions) != 3 {
		t.Fatalf("unexpected length: %d instead of 3", len(versions))
	}

	expected := []Record{{"b", "2"}, {"a", "1"}, {"b", "3"}}
	for i, v := range versions {
		entry := v.(map[string]interface{})
		if entry["module"] != expected[i].Name || entry["version"] != expected[i].Version {
			t.Errorf("unexpected entry %d: %v instead of %v", i, entry, expected[i])
		}
	}
}

func TestTimestampFormat(t *testing.T) {
	ts := time.Date(2018, time.June, 21, 15, 4, 5, 0, time.UTC)
	formatted := ts.Format(TimestampFormat)
	if formatted != "Thu Jun 21 15:04:05 2018 UTC" {
		t.Errorf("unexpected timestamp: %s", formatted)
	}
}
