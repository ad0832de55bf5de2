package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/itsatony/go-renderctx"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Test data constants
const (
	testHTML4StrictDoctype = `<!DOCTYPE HTML PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`
	testXHTML11Doctype     = `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.1//EN" "http://www.w3.org/TR/xhtml11/DTD/xhtml11.dtd">`
	testXHTML1TransDoctype = `<!DOCTYPE html PUBLIC "-//W3C//DTD XHTML 1.0 Transitional//EN" "http://www.w3.org/TR/xhtml1/DTD/xhtml1-transitional.dtd">`
	testConfigContent      = "default_preset: html-4.01-strict\nstrict_content_type: true\n"
)

// runCLI runs the CLI with the given args and stdin
func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	exitCode := run(args, strings.NewReader(stdin), stdout, stderr)
	return exitCode, stdout.String(), stderr.String()
}

// setupConfig writes a config file into a temp directory
func setupConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "renderctx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), FilePermissions))
	return path
}

// ==================== run() dispatch tests ====================

func TestRun_NoArgs_ShowsHelp(t *testing.T) {
	exitCode, stdout, _ := runCLI(t, "")

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout, CLIName)
	assert.Contains(t, stdout, CmdNameDoctype)
}

func TestRun_HelpCommand(t *testing.T) {
	exitCode, stdout, _ := runCLI(t, "", CmdNameHelp)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout, CLIName)
}

func TestRun_UnknownCommand(t *testing.T) {
	exitCode, stdout, _ := runCLI(t, "", "unknown")

	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stdout, ErrMsgUnknownCommand)
}

// ==================== Help command tests ====================

func TestHelp_Commands(t *testing.T) {
	tests := []struct {
		cmd      string
		expected string
	}{
		{CmdNameDoctype, HelpDoctypeUsage},
		{CmdNameContentType, HelpContentTypeUsage},
		{CmdNamePreContent, HelpPreContentUsage},
		{CmdNameNegotiate, HelpNegotiateUsage},
		{CmdNameServe, HelpServeUsage},
		{CmdNameVersion, HelpVersionUsage},
		{CmdNameHelp, HelpHelpUsage},
	}

	for _, tt := range tests {
		t.Run(tt.cmd, func(t *testing.T) {
			stdout := &bytes.Buffer{}
			exitCode := runHelp([]string{tt.cmd}, stdout)

			assert.Equal(t, ExitCodeSuccess, exitCode)
			assert.Contains(t, stdout.String(), tt.expected)
		})
	}
}

func TestHelp_UnknownCommand(t *testing.T) {
	stdout := &bytes.Buffer{}

	exitCode := runHelp([]string{"unknown"}, stdout)

	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stdout.String(), ErrMsgUnknownCommand)
	assert.Contains(t, stdout.String(), HelpMainUsage)
}

// ==================== Version command tests ====================

func TestVersion_Text(t *testing.T) {
	exitCode, stdout, _ := runCLI(t, "", CmdNameVersion)

	assert.Equal(t, ExitCodeSuccess, exitCode)
	assert.Contains(t, stdout, CLIName)
}

func TestVersion_JSON(t *testing.T) {
	exitCode, stdout, _ := runCLI(t, "", CmdNameVersion, "-F", OutputFormatJSON)
	require.Equal(t, ExitCodeSuccess, exitCode)

	var out versionInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.NotEmpty(t, out.Version)
	assert.NotEmpty(t, out.GoVersion)
}

func TestVersion_InvalidFormat(t *testing.T) {
	exitCode, _, stderr := runCLI(t, "", CmdNameVersion, "--format", "xml")

	assert.Equal(t, ExitCodeUsageError, exitCode)
	assert.Contains(t, stderr, ErrMsgInvalidFormat)
}

func TestGetVersionInfo(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "versions.yaml")
		require.NoError(t, os.WriteFile(path, []byte("project:\n  version: 1.2.3\ngit:\n  commit: abc123\n"), FilePermissions))

		v := getVersionInfo([]string{path})
		assert.Equal(t, "1.2.3", v.Version)
		assert.Equal(t, "abc123", v.Commit)
		assert.Equal(t, VersionUnknown, v.Branch)
	})

	t.Run("no file", func(t *testing.T) {
		v := getVersionInfo([]string{filepath.Join(t.TempDir(), "missing.yaml")})
		assert.Equal(t, VersionUnknown, v.Version)
	})
}

// ==================== Doctype command tests ====================

func TestDoctype(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"preset", []string{"-p", renderctx.PresetHTML4Strict}, testHTML4StrictDoctype},
		{"shorthand preset", []string{"--preset", "html4-strict"}, testHTML4StrictDoctype},
		{"language and version", []string{"-l", "xhtml", "-V", "1.1"}, testXHTML11Doctype},
		{"dialect overrides preset", []string{"-p", "xhtml-strict", "-d", "transitional"}, testXHTML1TransDoctype},
		{"default preset", nil, "<!DOCTYPE html>"},
		{"doctypeless language", []string{"-l", "json"}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode, stdout, stderr := runCLI(t, "", append([]string{CmdNameDoctype}, tt.args...)...)

			require.Equal(t, ExitCodeSuccess, exitCode, stderr)
			assert.Equal(t, tt.expected+FmtNewline, stdout)
		})
	}
}

func TestDoctype_JSON(t *testing.T) {
	exitCode, stdout, _ := runCLI(t, "", CmdNameDoctype, "-l", "xhtml", "-V", "1.1", "-F", OutputFormatJSON)
	require.Equal(t, ExitCodeSuccess, exitCode)

	var out profileOutput
	require.NoError(t, json.Unmarshal([]byte(stdout), &out))
	assert.Equal(t, "xhtml-1.1", out.Preset)
	assert.Equal(t, "xhtml", out.Language)
	assert.Equal(t, 1.1, out.Version)
	assert.Equal(t, testXHTML11Doctype, out.Doctype)
	assert.Equal(t, renderctx.ContentTypeHTML, out.ContentType)
	assert.True(t, out.XMLSyntax)
}

func TestDoctype_Errors(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		exitCode int
		message  string
	}{
		{"invalid preset", []string{"-p", "js-1.1"}, ExitCodeValidationError, ErrMsgProfileFailed},
		{"unsupported profile", []string{"-l", "html", "-V", "3"}, ExitCodeValidationError, ErrMsgProfileFailed},
		{"conflicting flags", []string{"-p", "html-5", "-l", "html"}, ExitCodeUsageError, ErrMsgConflictingProfile},
		{"invalid format", []string{"-F", "yaml"}, ExitCodeUsageError, ErrMsgInvalidFormat},
		{"unknown flag", []string{"--nope"}, ExitCodeUsageError, ErrMsgInvalidFlags},
		{"missing config", []string{"-c", "/nonexistent/renderctx.yaml"}, ExitCodeInputError, ErrMsgLoadConfigFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode, stdout, stderr := runCLI(t, "", append([]string{CmdNameDoctype}, tt.args...)...)

			assert.Equal(t, tt.exitCode, exitCode)
			assert.Empty(t, stdout)
			assert.Contains(t, stderr, tt.message)
		})
	}
}

func TestDoctype_Config(t *testing.T) {
	path := setupConfig(t, testConfigContent)

	exitCode, stdout, _ := runCLI(t, "", CmdNameDoctype, "-c", path)

	require.Equal(t, ExitCodeSuccess, exitCode)
	assert.Equal(t, testHTML4StrictDoctype+FmtNewline, stdout)
}

// ==================== Content type command tests ====================

func TestContentType(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{"xhtml lenient", []string{"-p", renderctx.PresetXHTML1Strict}, renderctx.ContentTypeHTML},
		{"xhtml strict", []string{"-p", renderctx.PresetXHTML1Strict, "--strict"}, renderctx.ContentTypeXHTML},
		{"mobile", []string{"-p", renderctx.PresetXHTML12Mobile}, renderctx.ContentTypeXHTMLMobile},
		{"json", []string{"-l", "json"}, renderctx.ContentTypeJSON},
		{"plain text", []string{"-l", "text"}, renderctx.ContentTypeText},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode, stdout, stderr := runCLI(t, "", append([]string{CmdNameContentType}, tt.args...)...)

			require.Equal(t, ExitCodeSuccess, exitCode, stderr)
			assert.Equal(t, tt.expected+FmtNewline, stdout)
		})
	}
}

func TestContentType_ConfigStrict(t *testing.T) {
	path := setupConfig(t, "default_preset: xhtml-1.1\nstrict_content_type: true\n")

	exitCode, stdout, _ := runCLI(t, "", CmdNameContentType, "-c", path)

	require.Equal(t, ExitCodeSuccess, exitCode)
	assert.Equal(t, renderctx.ContentTypeXHTML+FmtNewline, stdout)
}

// ==================== Pre-content command tests ====================

func TestPreContent(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		exitCode, stdout, _ := runCLI(t, "", CmdNamePreContent, "-p", renderctx.PresetXHTML11)

		require.Equal(t, ExitCodeSuccess, exitCode)
		assert.Equal(t, renderctx.XMLDeclaration+"\n"+testXHTML11Doctype+"\n", stdout)
	})

	t.Run("output file", func(t *testing.T) {
		outPath := filepath.Join(t.TempDir(), "header.html")

		exitCode, stdout, _ := runCLI(t, "", CmdNamePreContent, "-p", renderctx.PresetHTML4Strict, "-o", outPath)

		require.Equal(t, ExitCodeSuccess, exitCode)
		assert.Empty(t, stdout)

		content, err := os.ReadFile(outPath)
		require.NoError(t, err)
		assert.Equal(t, testHTML4StrictDoctype+"\n", string(content))
	})

	t.Run("no format flag", func(t *testing.T) {
		exitCode, _, _ := runCLI(t, "", CmdNamePreContent, "-F", OutputFormatJSON)
		assert.Equal(t, ExitCodeUsageError, exitCode)
	})
}

// ==================== Negotiate command tests ====================

func TestNegotiate_Text(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		contains []string
	}{
		{
			name:     "suffix",
			args:     []string{"-u", "/users.json?page=2"},
			contains: []string{"format: json", "source: suffix", "url: /users.json", "clean_url: /users"},
		},
		{
			name:     "accept",
			args:     []string{"-u", "/users", "-a", "application/xml;q=0.5, application/json"},
			contains: []string{"format: xml", "source: accept"},
		},
		{
			name:     "canonical",
			args:     []string{"-u", "/users.json", "--canonical", "xml"},
			contains: []string{"format: xml", "source: canonical"},
		},
		{
			name:     "forced",
			args:     []string{"-u", "/users.json", "--canonical", "json", "--force", "xml"},
			contains: []string{"format: xml", "source: forced"},
		},
		{
			name:     "none",
			args:     []string{"-u", "/users", "-a", "text/html"},
			contains: []string{"format: " + NegotiateNoFormat, "source: none"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode, stdout, stderr := runCLI(t, "", append([]string{CmdNameNegotiate}, tt.args...)...)

			require.Equal(t, ExitCodeSuccess, exitCode, stderr)
			for _, s := range tt.contains {
				assert.Contains(t, stdout, s)
			}
		})
	}
}

func TestNegotiate_Body(t *testing.T) {
	t.Run("json body from stdin", func(t *testing.T) {
		exitCode, stdout, stderr := runCLI(t, `{"name": "ada"}`, CmdNameNegotiate, "-u", "/users", "-b", "-", "-F", OutputFormatJSON)
		require.Equal(t, ExitCodeSuccess, exitCode, stderr)

		var out map[string]any
		require.NoError(t, json.Unmarshal([]byte(stdout), &out))
		assert.Equal(t, renderctx.ContentTypeJSON, out["body_type"])
		assert.Equal(t, map[string]any{"name": "ada"}, out["body"])
	})

	t.Run("xml body reports root", func(t *testing.T) {
		exitCode, stdout, stderr := runCLI(t, `<user id="1"/>`, CmdNameNegotiate,
			"-u", "/users", "-b", "-", "--content-type", renderctx.ContentTypeXML, "-F", OutputFormatJSON)
		require.Equal(t, ExitCodeSuccess, exitCode, stderr)

		var out negotiateOutput
		require.NoError(t, json.Unmarshal([]byte(stdout), &out))
		assert.Equal(t, "user", out.BodyRoot)
	})

	t.Run("text output names body type", func(t *testing.T) {
		exitCode, stdout, _ := runCLI(t, "a=1&b=2", CmdNameNegotiate, "-u", "/users", "-b", "-")
		require.Equal(t, ExitCodeSuccess, exitCode)
		assert.Contains(t, stdout, "body_type: "+renderctx.ContentTypeForm)
	})

	t.Run("malformed body", func(t *testing.T) {
		exitCode, _, stderr := runCLI(t, `{"name": `, CmdNameNegotiate,
			"-u", "/users", "-b", "-", "--content-type", renderctx.ContentTypeJSON)
		assert.Equal(t, ExitCodeInputError, exitCode)
		assert.Contains(t, stderr, ErrMsgDecodeBodyFailed)
	})
}

func TestNegotiate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		message string
	}{
		{"missing url", nil, ErrMsgMissingURL},
		{"unknown forced format", []string{"-u", "/x", "--force", "yaml"}, ErrMsgUnknownResponse},
		{"unknown canonical format", []string{"-u", "/x", "--canonical", "csv"}, ErrMsgUnknownResponse},
		{"invalid output format", []string{"-u", "/x", "-F", "yaml"}, ErrMsgInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			exitCode, _, stderr := runCLI(t, "", append([]string{CmdNameNegotiate}, tt.args...)...)

			assert.Equal(t, ExitCodeUsageError, exitCode)
			assert.Contains(t, stderr, tt.message)
		})
	}
}

// ==================== Serve command tests ====================

func newTestServer(t *testing.T, debug bool, opts ...renderctx.Option) http.Handler {
	t.Helper()
	handler, err := newServeHandler(opts, renderctx.NewDebugger(debug, nil), prometheus.NewRegistry())
	require.NoError(t, err)
	return handler
}

func serveGet(t *testing.T, handler http.Handler, target, accept string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if accept != "" {
		req.Header.Set(renderctx.HeaderAccept, accept)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestServe_Formats(t *testing.T) {
	handler := newTestServer(t, false)

	t.Run("html by default", func(t *testing.T) {
		rec := serveGet(t, handler, "/users", "")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get(renderctx.HeaderContentType))
		assert.Equal(t, "<!DOCTYPE html>\n"+`<div class="msg_info">/users</div>`, rec.Body.String())
	})

	t.Run("json by suffix", func(t *testing.T) {
		rec := serveGet(t, handler, "/users.json", "")

		assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get(renderctx.HeaderContentType))
		var payload servePayload
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
		assert.Equal(t, servePayload{Path: "/users", Format: "json"}, payload)
	})

	t.Run("xml by accept", func(t *testing.T) {
		rec := serveGet(t, handler, "/users", "application/xml")

		assert.Equal(t, "application/xml; charset=utf-8", rec.Header().Get(renderctx.HeaderContentType))
		assert.Equal(t, renderctx.XMLDeclaration+"\n"+"<response><path>/users</path><format>xml</format></response>", rec.Body.String())
	})

	t.Run("markup in path is escaped", func(t *testing.T) {
		rec := serveGet(t, handler, "/%3Cb%3E", "")
		assert.NotContains(t, rec.Body.String(), "<b>")
	})
}

func TestServe_Debug(t *testing.T) {
	handler := newTestServer(t, true, renderctx.WithDefaultPreset(renderctx.PresetXHTML11))

	rec := serveGet(t, handler, "/page", "")

	assert.Contains(t, rec.Body.String(), "<!-- context xhtml-1.1, format source none -->")
}

func TestServe_Metrics(t *testing.T) {
	handler := newTestServer(t, false)
	serveGet(t, handler, "/users.json", "")

	rec := serveGet(t, handler, ServeMetricsPath, "")

	require.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "renderctx_http_format_negotiations_total")
	assert.Contains(t, string(body), `format="json"`)
}

func TestServe_InvalidOptions(t *testing.T) {
	_, err := newServeHandler([]renderctx.Option{renderctx.WithDefaultPreset("js-1.1")},
		renderctx.NewDebugger(false, nil), prometheus.NewRegistry())
	require.Error(t, err)
	assert.True(t, renderctx.IsInvalidPreset(err))
}

func TestParseServeFlags(t *testing.T) {
	cfg, err := parseServeFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, FlagDefaultAddr, cfg.addr)
	assert.False(t, cfg.debug)

	cfg, err = parseServeFlags([]string{"-A", ":9090", "--debug", "-c", "cfg.yaml"})
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.addr)
	assert.True(t, cfg.debug)
	assert.Equal(t, "cfg.yaml", cfg.configPath)
}

func TestServe_MissingConfig(t *testing.T) {
	exitCode, _, stderr := runCLI(t, "", CmdNameServe, "-c", "/nonexistent/renderctx.yaml")

	assert.Equal(t, ExitCodeInputError, exitCode)
	assert.Contains(t, stderr, ErrMsgLoadConfigFailed)
}

// ==================== Output tests ====================

func TestWriteOutput(t *testing.T) {
	t.Run("stdout", func(t *testing.T) {
		stdout := &bytes.Buffer{}
		require.NoError(t, writeOutput(FlagDefaultOutput, []byte("data"), stdout))
		assert.Equal(t, "data", stdout.String())
	})

	t.Run("replaces file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), FilePermissions))

		require.NoError(t, writeOutput(path, []byte("new"), &bytes.Buffer{}))

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(content))
	})

	t.Run("missing directory", func(t *testing.T) {
		err := writeOutput(filepath.Join(t.TempDir(), "missing", "out.txt"), []byte("x"), &bytes.Buffer{})
		assert.Error(t, err)
	})
}
