package cli

import (
	"fmt"
	"io"
	"net/http"

	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/kbukum/httpkit/errors"
	"github.com/kbukum/httpkit/httpclient"
	"github.com/kbukum/httpkit/logger"
)

// Output formats for response bodies.
const (
	OutputRaw  = "raw"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

var outputFormats = []string{OutputRaw, OutputJSON, OutputYAML}

// render writes body to w, optionally narrowed to a gjson path.
func render(w io.Writer, body, path, format string) error {
	if path != "" {
		if !gjson.Valid(body) {
			return errors.New("response is not JSON; --path needs a JSON body")
		}
		res := gjson.Get(body, path)
		if !res.Exists() {
			return errors.Newf("path %q not found in response", path)
		}
		if format == OutputRaw {
			_, err := fmt.Fprintln(w, res.String())
			return err
		}
		body = res.Raw
	}

	switch format {
	case OutputJSON:
		if !gjson.Valid(body) {
			return errors.New("response is not JSON")
		}
		_, err := fmt.Fprint(w, gjson.Get(body, "@pretty").Raw)
		return err
	case OutputYAML:
		v, err := httpclient.Decode[any](body)
		if err != nil {
			return err
		}
		out, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		_, err = w.Write(out)
		return err
	default:
		_, err := fmt.Fprintln(w, body)
		return err
	}
}

// printStatus writes a HEAD result line.
func printStatus(w io.Writer, status int) {
	c := color.New(color.FgGreen)
	if status < 200 || status >= 300 {
		c = color.New(color.FgRed)
	}
	c.Fprintf(w, "%d %s\n", status, http.StatusText(status))
}

// consoleSink prints reported errors for a terminal user.
type consoleSink struct {
	w io.Writer
}

func (s consoleSink) Record(msg string, severity logger.Severity, source string, err error) {
	text := msg
	if err != nil {
		text = err.Error()
	}
	prefix := "error"
	if source != "" {
		prefix += " (" + source + ")"
	}
	c := color.New(color.FgRed, color.Bold)
	if severity < logger.SeverityError {
		c = color.New(color.FgYellow)
	}
	fmt.Fprintf(s.w, "%s: %s\n", c.Sprint(prefix), text)
}

var _ logger.Sink = consoleSink{}
