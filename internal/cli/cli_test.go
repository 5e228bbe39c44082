package cli

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorded struct {
	mu      sync.Mutex
	method  string
	uri     string
	body    string
	headers http.Header
}

func (r *recorded) snapshot() recorded {
	r.mu.Lock()
	defer r.mu.Unlock()
	return recorded{method: r.method, uri: r.uri, body: r.body, headers: r.headers}
}

func newServer(t *testing.T, status int, response string) (*httptest.Server, *recorded) {
	t.Helper()
	rec := &recorded{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		rec.mu.Lock()
		rec.method, rec.uri, rec.body, rec.headers = r.Method, r.RequestURI, string(body), r.Header.Clone()
		rec.mu.Unlock()
		w.WriteHeader(status)
		_, _ = w.Write([]byte(response))
	}))
	t.Cleanup(srv.Close)
	return srv, rec
}

func run(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	args = append([]string{"--no-color", "--config", filepath.Join(t.TempDir(), "none.yml")}, args...)
	code := NewApp(&out, &errOut).Run(context.Background(), args)
	return code, out.String(), errOut.String()
}

func TestGet(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"id":5,"items":[{"name":"widget"}]}`)

	code, out, errOut := run(t, "get", srv.URL+"/api", "-q", "id=5", "-q", "name=a b", "-q", "empty=")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, `{"id":5,"items":[{"name":"widget"}]}`+"\n", out)

	got := rec.snapshot()
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/api?id=5&name=a%20b", got.uri)
}

func TestGet_OutputFormats(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"id":5,"items":[{"name":"widget"}]}`)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"path raw", []string{"--path", "items.0.name"}, "widget\n"},
		{"path json", []string{"--path", "items.0", "-o", "json"}, "{\n  \"name\": \"widget\"\n}\n"},
		{"yaml", []string{"-o", "yaml", "--path", "items.0"}, "name: widget\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, out, errOut := run(t, append([]string{"get", srv.URL}, tc.args...)...)
			require.Equal(t, ExitSuccess, code, errOut)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestGet_PathErrors(t *testing.T) {
	srv, _ := newServer(t, http.StatusOK, `{"id":5}`)
	code, _, errOut := run(t, "get", srv.URL, "--path", "missing")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, `path "missing" not found`)

	plain, _ := newServer(t, http.StatusOK, "hello")
	code, _, errOut = run(t, "get", plain.URL, "-o", "json")
	assert.Equal(t, ExitFailure, code)
	assert.Contains(t, errOut, "not JSON")
}

func TestGet_HTTPStatusError(t *testing.T) {
	srv, _ := newServer(t, http.StatusNotFound, "gone")
	code, out, errOut := run(t, "get", srv.URL)
	assert.Equal(t, ExitHTTPStatus, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "404")
}

func TestGet_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	code, _, errOut := run(t, "get", url)
	assert.Equal(t, ExitUnreachable, code)
	assert.Contains(t, errOut, "error")
}

func TestUsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"invalid url", []string{"get", "not-a-url"}, "must be a valid http or https URL"},
		{"bad query pair", []string{"get", "http://localhost", "-q", "novalue"}, `"novalue" is not key=value`},
		{"unknown output", []string{"get", "http://localhost", "-o", "xml"}, "output"},
		{"missing arg", []string{"head"}, "accepts 1 arg"},
		{"unknown flag", []string{"get", "http://localhost", "--bogus"}, "unknown flag"},
		{"data with form", []string{"post", "http://localhost", "--data", "x", "--form", "a=1"}, "cannot be combined"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			code, _, errOut := run(t, tc.args...)
			assert.Equal(t, ExitUsage, code)
			assert.Contains(t, errOut, tc.want)
		})
	}
}

func TestPost(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, `{"ok":true}`)

	code, out, errOut := run(t, "--referer", "http://ref.example", "post", srv.URL+"/api", "--data", `{"a":1}`)
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, `{"ok":true}`+"\n", out)

	got := rec.snapshot()
	assert.Equal(t, http.MethodPost, got.method)
	assert.Equal(t, "/api", got.uri)
	assert.Equal(t, `{"a":1}`, got.body)
	assert.Equal(t, "application/x-www-form-urlencoded", got.headers.Get("Content-Type"))
	assert.Equal(t, "http://ref.example", got.headers.Get("Referer"))
}

func TestPost_Form(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, "ok")

	code, _, errOut := run(t, "post", srv.URL, "--form", "user=alice", "--form", "note=a&b", "-q", "v=2")
	require.Equal(t, ExitSuccess, code, errOut)

	got := rec.snapshot()
	assert.Equal(t, "/?v=2", got.uri)
	assert.Equal(t, "user=alice&note=a%26b", got.body)
}

func TestHead(t *testing.T) {
	ok, rec := newServer(t, http.StatusOK, "")
	code, out, _ := run(t, "head", ok.URL)
	assert.Equal(t, ExitSuccess, code)
	assert.Equal(t, "200 OK\n", out)
	assert.Equal(t, http.MethodHead, rec.snapshot().method)

	failing, _ := newServer(t, http.StatusInternalServerError, "")
	code, out, errOut := run(t, "head", failing.URL)
	assert.Equal(t, ExitUnreachable, code)
	assert.Equal(t, "417 Expectation Failed\n", out)
	assert.Empty(t, errOut)
}

func TestUpload(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, "stored")
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("file body"), 0o600))

	code, out, errOut := run(t, "upload", srv.URL+"/files", path, "-q", "folder=x")
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, "stored\n", out)

	got := rec.snapshot()
	assert.Equal(t, "/files?folder=x", got.uri)
	assert.True(t, strings.HasPrefix(got.headers.Get("Content-Type"), "multipart/form-data"))
	assert.Contains(t, got.body, `filename="notes.txt"`)
	assert.Contains(t, got.body, "file body")

	code, _, _ = run(t, "upload", srv.URL, filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, ExitFailure, code)
}

func TestConfigFile(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, "ok")
	cfgPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(`
http:
  headers:
    x-team: payments
  auth:
    type: bearer
    token: abc
`), 0o600))

	var out, errOut bytes.Buffer
	code := NewApp(&out, &errOut).Run(context.Background(), []string{"--config", cfgPath, "get", srv.URL})
	require.Equal(t, ExitSuccess, code, errOut.String())

	got := rec.snapshot()
	assert.Equal(t, "payments", got.headers.Get("X-Team"))
	assert.Equal(t, "Bearer abc", got.headers.Get("Authorization"))
}

func TestConfigErrors(t *testing.T) {
	code, _, errOut := run(t, "--encoding", "klingon", "get", "http://localhost")
	assert.Equal(t, ExitConfigError, code)
	assert.Contains(t, errOut, "klingon")

	code, _, _ = run(t, "--log-level", "loud", "get", "http://localhost")
	assert.Equal(t, ExitConfigError, code)
}

func TestConfigEnv(t *testing.T) {
	srv, rec := newServer(t, http.StatusOK, "ok")

	t.Setenv("ENVIRONMENT", "prod")
	t.Setenv("HTTP_TIMEOUT", "not-a-duration")
	t.Setenv("HTTPKIT_HTTP_AUTH_TYPE", "bearer")
	t.Setenv("HTTPKIT_HTTP_AUTH_TOKEN", "abc")
	code, _, errOut := run(t, "get", srv.URL)
	require.Equal(t, ExitSuccess, code, errOut)
	assert.Equal(t, "Bearer abc", rec.snapshot().headers.Get("Authorization"))

	t.Setenv("HTTPKIT_ENVIRONMENT", "prod")
	code, _, errOut = run(t, "get", srv.URL)
	assert.Equal(t, ExitConfigError, code)
	assert.Contains(t, errOut, "config.environment")
}

func TestVersion(t *testing.T) {
	code, out, _ := run(t, "version")
	assert.Equal(t, ExitSuccess, code)
	assert.True(t, strings.HasPrefix(out, "httpkit version "))

	code, out, _ = run(t, "version", "-o", "json")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, `"version"`)

	code, out, _ = run(t, "version", "-o", "yaml")
	assert.Equal(t, ExitSuccess, code)
	assert.Contains(t, out, "version:")
}
