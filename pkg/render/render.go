// Package render maps format names to renderers that turn a version report
// into a display representation. The host picks the renderer; the report
// itself never chooses how it is shown.
package render

import (
	"sort"
	"strings"

	"github.com/jzelinskie/verinfo/pkg/report"
)

// Renderer produces one display representation of a version report.
type Renderer interface {
	// Render serializes the full report in this renderer's format.
	Render(r report.Report) ([]byte, error)
	// Pretty reformats rendered bytes for human consumption, where the
	// format distinguishes the two.
	Pretty(rendered []byte) ([]byte, error)
	// Color re-renders bytes with terminal colors, where supported.
	Color(rendered []byte) ([]byte, error)
}

var nameToRenderer = map[string]Renderer{}

// Register maps a format name to a Renderer implementation.
func Register(name string, renderer Renderer) {
	nameToRenderer[name] = renderer
}

// ByName is a mapping from dynamically registered format names to Renderer
// implementations.
func ByName(name string) (Renderer, bool) {
	renderer, ok := nameToRenderer[strings.ToLower(name)]
	return renderer, ok
}

// ToName maps a renderer to a registered format name.
func ToName(renderer Renderer) string {
	for name, r := range nameToRenderer {
		if r == renderer {
			return name
		}
	}
	return ""
}

// Names returns the sorted list of registered format names.
func Names() []string {
	names := make([]string, 0, len(nameToRenderer))
	for name := range nameToRenderer {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
