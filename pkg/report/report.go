// Package report holds the ordered sequence of software version records that
// a single verinfo invocation produces.
package report

import (
	"fmt"
	"runtime"
	"strings"
	"time"

	"github.com/jzelinskie/verinfo/internal/version"
)

// TimestampFormat is the layout used for the generation timestamp in every
// rendering that includes one.
const TimestampFormat = "Mon Jan 02 15:04:05 2006 MST"

// Record is a single (subject, resolved version) pair. The Version field
// holds an error description when no version could be determined.
type Record struct {
	Name    string
	Version string
}

// Report is the ordered sequence of records built by one invocation, plus the
// time it was generated. Insertion order is significant and duplicates are
// legal.
type Report struct {
	Records   []Record
	Timestamp time.Time
}

// Append adds a record to the end of the report.
func (r *Report) Append(name, value string) {
	r.Records = append(r.Records, Record{Name: name, Version: value})
}

// JSONObject returns the report as the structure serialized by the JSON
// renderer: one "Software versions" key mapping to an array of
// module/version pairs in record order. Hosts whose display protocol accepts
// native values can consume it directly.
func (r Report) JSONObject() map[string]interface{} {
	versions := make([]interface{}, 0, len(r.Records))
	for _, rec := range r.Records {
		versions = append(versions, map[string]interface{}{
			"module":  rec.Name,
			"version": rec.Version,
		})
	}
	return map[string]interface{}{"Software versions": versions}
}

// Baseline returns the fixed leading records that every report carries
// regardless of which subjects were requested: the Go runtime, verinfo
// itself, and the OS platform.
func Baseline() []Record {
	return []Record{
		{Name: "Go", Version: fmt.Sprintf("%s %s [%s]", runtime.Version(), runtime.GOARCH, runtime.Compiler)},
		{Name: "verinfo", Version: version.String()},
		{Name: "OS", Version: platform()},
	}
}

func platform() string {
	descriptor := fmt.Sprintf("%s [%s]", runtime.GOOS, runtime.GOARCH)
	return strings.Replace(descriptor, "-", " ", -1)
}
