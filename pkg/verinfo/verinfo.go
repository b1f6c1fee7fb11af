// Package verinfo wires the resolver and renderers into the single
// collect-then-render pipeline behind the verinfo command.
package verinfo

import (
	"bytes"
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/jzelinskie/verinfo/pkg/render"
	"github.com/jzelinskie/verinfo/pkg/report"
	"github.com/jzelinskie/verinfo/pkg/resolve"
)

// Flags are the configuration flags for verinfo
type Flags struct {
	Debug        bool
	Format       string
	Pretty       bool
	Color        bool
	Monochrome   bool
	PrintVersion bool
}

// Collect gathers the baseline records and then resolves every subject named
// in line, preserving input order. It always returns a complete report; any
// resolution failure appears inline as that record's version value.
func Collect(line string) report.Report {
	rep := report.Report{Records: report.Baseline(), Timestamp: time.Now()}
	for _, subject := range resolve.ParseSubjects(line) {
		logrus.Debugf("resolving subject %q", subject)
		rep.Records = append(rep.Records, resolve.Resolve(subject))
	}
	return rep
}

// Run collects a report for the given subject line and writes it to w in the
// format selected by flags. An unrecognized format name is the only error
// condition.
func Run(w io.Writer, line string, flags Flags) error {
	renderer, ok := render.ByName(flags.Format)
	if !ok {
		return fmt.Errorf("no supported format found named %s", flags.Format)
	}

	output, err := renderer.Render(Collect(line))
	if err != nil {
		return fmt.Errorf("failed to render report as %s: %s", flags.Format, err)
	}

	if flags.Pretty {
		output, err = renderer.Pretty(output)
		if err != nil {
			return fmt.Errorf("failed to render report as pretty %s: %s", flags.Format, err)
		}
	}

	if flags.Color && !flags.Monochrome {
		output, err = renderer.Color(output)
		if err != nil {
			return fmt.Errorf("failed to render report as color %s: %s", flags.Format, err)
		}
	}

	fmt.Fprintln(w, string(bytes.TrimSuffix(output, []byte("\n"))))
	return nil
}
