package version

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Version is verinfo's version string
var Version string

// String returns the best available version string for verinfo itself: the
// value injected via ldflags, or failing that the Go module version recorded
// in the binary's build info.
func String() string {
	if Version != "" {
		return Version
	}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return "(devel)"
	}
	return bi.Main.Version
}

// UsageVersion introspects the process debug data for Go modules to return a
// version string.
func UsageVersion() string {
	bi, ok := debug.ReadBuildInfo()
	if !ok {
		panic("failed to read BuildInfo because the program was compiled with Go " + runtime.Version())
	}

	if Version == "" {
		// The version wasn't set by ldflags, so fallback to the Go module version.
		// Although, this value is pretty much guaranteed to just be "devel".
		Version = bi.Main.Version
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s version %s\n", bi.Path, Version)
	for _, dep := range bi.Deps {
		fmt.Fprintf(&b, "\t%s %s\n", dep.Path, dep.Version)
	}
	return b.String()
}
