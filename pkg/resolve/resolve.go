// Package resolve turns subject names into best-effort version strings. A
// subject is either a module, resolved through the provider registry with a
// fallback to the binary's Go module table, or an external executable,
// resolved by running it with a version flag.
//
// Resolution is total: every subject produces a record, and failures are
// folded into the record's version value instead of being returned.
package resolve

import (
	"fmt"
	"os/exec"
	"path"
	"runtime/debug"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/jzelinskie/verinfo/pkg/report"
)

// ExecutableMarker prefixes a subject that should be resolved by invoking it
// as an external executable instead of looking it up as a module.
const ExecutableMarker = "!"

// Provider reports the version of the component it was registered for.
type Provider func() (string, error)

var providers = map[string]Provider{}

// Register maps a subject name to a Provider. Libraries and embedding hosts
// register the components they can self-report, usually from init.
func Register(name string, provider Provider) {
	providers[name] = provider
}

// readBuildInfo is a hook over debug.ReadBuildInfo so tests can substitute a
// fixture module table.
var readBuildInfo = debug.ReadBuildInfo

// ParseSubjects splits a free-text subject line into subject names. Spaces
// are stripped before splitting on commas, and empty entries are dropped.
func ParseSubjects(line string) []string {
	var subjects []string
	for _, subject := range strings.Split(strings.Replace(line, " ", "", -1), ",") {
		if len(subject) > 0 {
			subjects = append(subjects, subject)
		}
	}
	return subjects
}

// Resolve produces the record for a single subject, selecting the executable
// path when the subject carries the marker prefix.
func Resolve(subject string) report.Record {
	if strings.HasPrefix(subject, ExecutableMarker) {
		return ResolveExecutable(strings.TrimPrefix(subject, ExecutableMarker))
	}
	return resolveModule(subject)
}

func resolveModule(name string) report.Record {
	value, lookupErr := lookupProvider(name)
	if lookupErr == nil {
		return report.Record{Name: name, Version: value}
	}
	logrus.Debugf("provider lookup for %q failed: %v", name, lookupErr)

	if value, ok := lookupBuildDep(name); ok {
		return report.Record{Name: name, Version: value}
	}
	logrus.Debugf("no module in the build info matches %q", name)

	// The provider error is reported even when the build info lookup also
	// failed; output stability depends on this ordering.
	return report.Record{Name: name, Version: lookupErr.Error()}
}

func lookupProvider(name string) (string, error) {
	provider, ok := providers[name]
	if !ok {
		return "", fmt.Errorf("no version provider registered for %q", name)
	}
	value, err := provider()
	if err != nil {
		return "", err
	}
	return value, nil
}

// lookupBuildDep searches the running binary's Go module table for a module
// matching the subject by full path, replacement path, or final path element.
func lookupBuildDep(name string) (string, bool) {
	bi, ok := readBuildInfo()
	if !ok {
		return "", false
	}

	for _, dep := range bi.Deps {
		resolved := dep
		if dep.Replace != nil {
			resolved = dep.Replace
		}
		if dep.Path == name || resolved.Path == name || path.Base(resolved.Path) == name {
			return resolved.Version, true
		}
	}
	return "", false
}

// ResolveExecutable runs the named executable with a conventional version
// flag and captures its output as the version value. Invocation failures of
// any kind become the value; the call blocks until the subprocess exits.
func ResolveExecutable(name string) report.Record {
	out, err := exec.Command(name, "--version").CombinedOutput()
	value := strings.TrimSpace(string(out))
	if err != nil {
		logrus.Debugf("executing %q failed: %v", name, err)
		if value == "" {
			value = err.Error()
		}
	}
	return report.Record{Name: name, Version: value}
}
