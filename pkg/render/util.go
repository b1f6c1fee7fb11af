package render

import "os"

// trueColorSupported returns true if the tty is configured to support
// truecolor.
func trueColorSupported() bool {
	return os.Getenv("COLORTERM") == "truecolor"
}

// ChromaFormatter is a helper to detect the ideal Chroma formatter name for
// colorizing output.
//
// This function is useful for implementing Color() in the Renderer interface.
func ChromaFormatter() string {
	formatter := os.Getenv("VERINFO_FORMATTER")
	if formatter == "" {
		formatter = "terminal"
	} else if trueColorSupported() {
		formatter = "terminal16m"
	}
	return formatter
}

// ChromaStyle is a helper to return the default Chroma style.
//
// This function is useful for implementing Color() in the Renderer interface.
func ChromaStyle() string {
	style := os.Getenv("VERINFO_STYLE")
	if style == "" {
		return "pygments"
	}
	return style
}
