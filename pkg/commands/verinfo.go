package commands

import (
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/jzelinskie/verinfo/internal/version"
	"github.com/jzelinskie/verinfo/pkg/render"
	"github.com/jzelinskie/verinfo/pkg/verinfo"
)

// Execute runs the verinfo commandline program.
func Execute() {
	verinfoCmd := NewVersionInfoCommand()
	if err := verinfoCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewVersionInfoCommand returns the verinfo cobra.Command. Embedding
// applications call this once at startup and add the result to their own
// command tree; the standalone binary executes it directly.
func NewVersionInfoCommand() *cobra.Command {
	var flags verinfo.Flags

	var rootCmd = &cobra.Command{
		Use:   "verinfo [flags] [modules...]",
		Short: "software version information",
		Long: fmt.Sprintf(`verinfo collects the versions of the requested software modules, along with
the Go runtime, verinfo itself, and the OS platform, and renders the result
in the chosen output format.

Modules are resolved against registered version providers, falling back to
the Go module table compiled into the binary. Prefix a name with ! to run it
as an external executable with --version instead.

Supported formats:
- %s

$VERINFO_FORMATTER can be set to terminal, terminal16m, json, tokens, html.
$VERINFO_STYLE can be set to any of the following themes:
https://xyproto.github.io/splash/docs/
`, strings.Join(render.Names(), "\n- ")),
		DisableFlagsInUseLine: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCmdFunc(cmd, args, flags)
		},
	}

	rootCmd.Flags().BoolVar(&flags.Debug, "debug", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&flags.Format, "output-format", "o", "text", "output format")
	rootCmd.Flags().BoolVarP(&flags.Pretty, "pretty-output", "p", true, "pretty-printed output")
	rootCmd.Flags().BoolVarP(&flags.Color, "color-output", "c", true, "colorize the output")
	rootCmd.Flags().BoolVarP(&flags.Monochrome, "monochrome-output", "m", false, "monochrome (don't colorize the output)")
	rootCmd.Flags().BoolVarP(&flags.PrintVersion, "version", "v", false, "Print the version and exit.")

	_ = rootCmd.Flags().MarkHidden("debug")
	return rootCmd
}

func runCmdFunc(cmd *cobra.Command, args []string, flags verinfo.Flags) error {
	if flags.Debug {
		logrus.SetLevel(logrus.DebugLevel)
	}

	if flags.PrintVersion {
		fmt.Printf(version.UsageVersion())
		return nil
	}

	outputFile := os.Stdout

	// If monochrome is true, disable color, as it takes higher precedence then
	// --color-output.
	// If we're running in Windows, disable color, since it usually doesn't
	// handle colors correctly.
	// If the output isn't a TTY, and color hasn't been explicitly set via the
	// flag, disable color.
	// otherwise, use to the flags values to determine if color is enabled.
	if flags.Monochrome || runtime.GOOS == "windows" || !terminal.IsTerminal(int(outputFile.Fd())) && !cmd.Flags().Changed("color-output") {
		flags.Color = false
	}

	// Each positional argument is itself a comma separated list of subjects;
	// join them back into the single free-text line the collector takes.
	line := strings.Join(args, ",")

	return verinfo.Run(outputFile, line, flags)
}
