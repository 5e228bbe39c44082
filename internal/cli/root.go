// Package cli implements the httpkit command line.
package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kbukum/httpkit/errors"
)

const serviceName = "httpkit"

// globalOptions are the persistent flags shared by every command.
type globalOptions struct {
	configFile string
	timeout    time.Duration
	encoding   string
	referer    string
	cookieJar  bool
	logLevel   string
	noColor    bool
}

// App wires the command tree to its output streams.
type App struct {
	opts   globalOptions
	out    io.Writer
	errOut io.Writer
}

// NewApp creates an App writing results to out and diagnostics to errOut.
func NewApp(out, errOut io.Writer) *App {
	return &App{out: out, errOut: errOut}
}

// Command builds the root command.
func (a *App) Command() *cobra.Command {
	root := &cobra.Command{
		Use:   serviceName,
		Short: "Send form-encoded HTTP requests and decode the responses",
		Long: `httpkit sends GET, POST, HEAD and multipart upload requests with
ordered, percent-encoded parameters and prints the response body as raw
text, pretty JSON or YAML.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if a.opts.noColor {
				color.NoColor = true
			}
		},
	}
	root.SetOut(a.out)
	root.SetErr(a.errOut)
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return withExitCode(ExitUsage, err)
	})

	f := root.PersistentFlags()
	f.StringVar(&a.opts.configFile, "config", "", "config file (default: ./httpkit.yml, then <user config dir>/httpkit/config.yml)")
	f.DurationVar(&a.opts.timeout, "timeout", 0, "request timeout (default from config, 10s)")
	f.StringVar(&a.opts.encoding, "encoding", "", "response/request charset, e.g. utf-8, gbk")
	f.StringVar(&a.opts.referer, "referer", "", "Referer header to send")
	f.BoolVar(&a.opts.cookieJar, "cookie-jar", false, "keep cookies in memory across redirects")
	f.StringVar(&a.opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	f.BoolVar(&a.opts.noColor, "no-color", false, "disable colored output")

	root.AddCommand(
		a.getCommand(),
		a.postCommand(),
		a.headCommand(),
		a.uploadCommand(),
		a.versionCommand(),
	)
	return root
}

// Run executes args and returns the process exit code. Errors are reported
// on errOut.
func (a *App) Run(ctx context.Context, args []string) int {
	cmd := a.Command()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	code := exitCodeFor(err)
	if err != nil && err.Error() != "" {
		errors.NewReporter(consoleSink{w: a.errOut}).Report(errors.Ensure(err))
	}
	return code
}

// Execute runs the CLI against the process arguments and streams.
func Execute() int {
	return NewApp(os.Stdout, os.Stderr).Run(context.Background(), os.Args[1:])
}

// exactArgs wraps cobra.ExactArgs so argument errors map to ExitUsage.
func exactArgs(n int) cobra.PositionalArgs {
	check := cobra.ExactArgs(n)
	return func(cmd *cobra.Command, args []string) error {
		return withExitCode(ExitUsage, check(cmd, args))
	}
}
