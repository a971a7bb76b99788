package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pricofy/sogou-translate/pkg/sogou"
)

func isolateEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"SOGOU_PID", "SOGOU_SECRET_KEY", "SOGOU_ENDPOINT", "SOGOU_TIMEOUT", "LOG_LEVEL", "LOG_PRETTY"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

// newServer answers every request with the given errorCode, echoing q
// upper-cased as the translation on success.
func newServer(t *testing.T, errorCode string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]string{
			"errorCode":   errorCode,
			"translation": strings.ToUpper(r.PostForm.Get("q")) + "@" + r.PostForm.Get("to"),
		})
	}))
	t.Cleanup(srv.Close)
	return srv
}

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := NewRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestTranslateCommand(t *testing.T) {
	isolateEnv(t)
	srv := newServer(t, sogou.CodeSuccess)

	out, _, err := execute(t, "",
		"--pid", "p", "--secret-key", "s", "--endpoint", srv.URL,
		"--from", "en", "--to", "fr", "hello", "world")

	require.NoError(t, err)
	assert.Equal(t, "HELLO WORLD@fr\n", out)
}

func TestTranslateCommandStdin(t *testing.T) {
	isolateEnv(t)
	srv := newServer(t, sogou.CodeSuccess)
	t.Setenv("SOGOU_PID", "p")
	t.Setenv("SOGOU_SECRET_KEY", "s")
	t.Setenv("SOGOU_ENDPOINT", srv.URL)

	out, _, err := execute(t, "from stdin\n")

	require.NoError(t, err)
	assert.Equal(t, "FROM STDIN@zh-CHS\n", out)
}

func TestTranslateCommandErrors(t *testing.T) {
	t.Run("missing credentials", func(t *testing.T) {
		isolateEnv(t)

		_, _, err := execute(t, "", "hello")

		var cfgErr *sogou.ConfigurationError
		assert.True(t, errors.As(err, &cfgErr), "got %v", err)
	})

	t.Run("unknown language", func(t *testing.T) {
		isolateEnv(t)

		_, _, err := execute(t, "", "--pid", "p", "--secret-key", "s", "--to", "klingon", "hello")

		assert.ErrorContains(t, err, "unsupported language")
	})

	t.Run("remote error", func(t *testing.T) {
		isolateEnv(t)
		srv := newServer(t, sogou.CodeIncorrectSignature)

		out, _, err := execute(t, "", "--pid", "p", "--secret-key", "s", "--endpoint", srv.URL, "hello")

		assert.EqualError(t, err, "Translate API: The signature is incorrect")
		assert.Empty(t, out)
	})

	t.Run("empty stdin", func(t *testing.T) {
		isolateEnv(t)
		srv := newServer(t, sogou.CodeSuccess)

		_, _, err := execute(t, "", "--pid", "p", "--secret-key", "s", "--endpoint", srv.URL)

		var valErr *sogou.ValidationError
		assert.True(t, errors.As(err, &valErr), "got %v", err)
	})
}

func TestTranslateCommandMetrics(t *testing.T) {
	isolateEnv(t)
	srv := newServer(t, sogou.CodeSuccess)

	_, errOut, err := execute(t, "",
		"--pid", "p", "--secret-key", "s", "--endpoint", srv.URL, "--metrics", "hello")

	require.NoError(t, err)
	assert.Contains(t, errOut, `sogou_translate_requests_total{from="en",outcome="ok",to="zh-CHS"} 1`)
	assert.Contains(t, errOut, "sogou_translate_request_duration_seconds_count")
}

func TestLanguagesCommand(t *testing.T) {
	out, _, err := execute(t, "", "languages")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(sogou.Languages()))
	assert.Contains(t, out, "zh-CHS")
	assert.Contains(t, out, "Chinese Simplified")
}

func TestCodesCommand(t *testing.T) {
	out, _, err := execute(t, "", "codes")

	require.NoError(t, err)
	assert.Contains(t, out, "1009")
	assert.Contains(t, out, "Translate API: The signature is incorrect")
	assert.Contains(t, out, "10010")
}

func TestReadText(t *testing.T) {
	got, err := readText(strings.NewReader("ignored"), []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, "a b", got)

	got, err = readText(strings.NewReader("line\r\n"), nil)
	require.NoError(t, err)
	assert.Equal(t, "line", got)
}
