package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kbukum/httpkit/errors"
	"github.com/kbukum/httpkit/httpclient/form"
	"github.com/kbukum/httpkit/validation"
	"github.com/kbukum/httpkit/version"
)

// withSession opens a session around fn and closes it afterwards.
func (a *App) withSession(cmd *cobra.Command, fn func(ctx context.Context, s *session) error) error {
	ctx := cmd.Context()
	s, err := a.openSession(ctx)
	if err != nil {
		return err
	}
	defer s.close(ctx)
	return fn(ctx, s)
}

type bodyOptions struct {
	query  []string
	path   string
	output string
}

func (o *bodyOptions) bind(cmd *cobra.Command) {
	cmd.Flags().StringArrayVarP(&o.query, "query", "q", nil, "query parameter key=value (repeatable, order kept)")
	cmd.Flags().StringVar(&o.path, "path", "", "gjson path selecting part of a JSON response")
	cmd.Flags().StringVarP(&o.output, "output", "o", OutputRaw, "output format: raw, json, yaml")
}

func (o *bodyOptions) validate() error {
	return withExitCode(ExitUsage, validation.New().OneOf("output", o.output, outputFormats).Validate())
}

func (a *App) getCommand() *cobra.Command {
	var opts bodyOptions
	cmd := &cobra.Command{
		Use:   "get URL",
		Short: "Send a GET request with query parameters",
		Example: `  httpkit get http://localhost:8080/api -q id=5 -q name=widget
  httpkit get http://localhost:8080/api --path items.0.name`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateTarget(args[0]); err != nil {
				return err
			}
			if err := opts.validate(); err != nil {
				return err
			}
			query, err := parsePairs("query", opts.query)
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, s *session) error {
				text, err := s.client(args[0]).GetString(ctx, query, s.reqOpts...)
				if err != nil {
					return err
				}
				return render(a.out, text, opts.path, opts.output)
			})
		},
	}
	opts.bind(cmd)
	return cmd
}

func (a *App) postCommand() *cobra.Command {
	var (
		opts   bodyOptions
		data   string
		fields []string
	)
	cmd := &cobra.Command{
		Use:   "post URL",
		Short: "Send a POST with a verbatim or form-encoded body",
		Example: `  httpkit post http://localhost:8080/api --data '{"a":1}'
  httpkit post http://localhost:8080/login --form user=alice --form pass=secret`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateTarget(args[0]); err != nil {
				return err
			}
			if err := opts.validate(); err != nil {
				return err
			}
			v := validation.New().Custom(data == "" || len(fields) == 0, "data", "cannot be combined with --form")
			if err := v.Validate(); err != nil {
				return withExitCode(ExitUsage, err)
			}
			query, err := parsePairs("query", opts.query)
			if err != nil {
				return err
			}
			formData, err := parsePairs("form", fields)
			if err != nil {
				return err
			}
			body := data
			if formData != nil {
				if body, err = form.EncodeFromMap(formData, form.DefaultOptions()); err != nil {
					return err
				}
			}
			return a.withSession(cmd, func(ctx context.Context, s *session) error {
				text, err := s.client(args[0]).PostString(ctx, body, query, s.reqOpts...)
				if err != nil {
					return err
				}
				return render(a.out, text, opts.path, opts.output)
			})
		},
	}
	opts.bind(cmd)
	cmd.Flags().StringVarP(&data, "data", "d", "", "request body, sent verbatim")
	cmd.Flags().StringArrayVar(&fields, "form", nil, "form field key=value (repeatable, order kept)")
	return cmd
}

func (a *App) headCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "head URL",
		Short: "Probe a URL with HEAD and print the status",
		Long: `Probe a URL with HEAD. Any failure, including a non-2xx answer, is
reported as 417 Expectation Failed and exits with code 4.`,
		Args: exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateTarget(args[0]); err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, s *session) error {
				status := s.client(args[0]).Head(ctx, s.reqOpts...)
				printStatus(a.out, status)
				if status == http.StatusExpectationFailed {
					return &exitError{code: ExitUnreachable}
				}
				return nil
			})
		},
	}
}

func (a *App) uploadCommand() *cobra.Command {
	var opts bodyOptions
	cmd := &cobra.Command{
		Use:     "upload URL FILE",
		Short:   "Upload a file as multipart/form-data",
		Example: `  httpkit upload http://localhost:8080/files ./report.csv -q folder=reports`,
		Args:    exactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := validateTarget(args[0]); err != nil {
				return err
			}
			if err := opts.validate(); err != nil {
				return err
			}
			query, err := parsePairs("query", opts.query)
			if err != nil {
				return err
			}
			return a.withSession(cmd, func(ctx context.Context, s *session) error {
				text, err := s.client(args[0]).Upload(ctx, query, args[1], s.reqOpts...)
				if err != nil {
					return err
				}
				return render(a.out, text, opts.path, opts.output)
			})
		},
	}
	opts.bind(cmd)
	return cmd
}

func (a *App) versionCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  exactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			info := version.Get()
			switch output {
			case OutputJSON:
				out, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(append(out, '\n'))
				return err
			case OutputYAML:
				return yaml.NewEncoder(cmd.OutOrStdout()).Encode(info)
			case OutputRaw, "":
				_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", serviceName, info)
				return err
			default:
				return withExitCode(ExitUsage, errors.Newf("unknown output format %q", output))
			}
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", OutputRaw, "output format: raw, json, yaml")
	return cmd
}
