package main

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/todosync/internal/client/cli"
	"github.com/iudanet/todosync/pkg/api"
)

// baseArgs изолирует тест от пользовательского конфига и базы
func baseArgs(t *testing.T, extra ...string) []string {
	t.Helper()
	dir := t.TempDir()
	args := []string{
		"-config", filepath.Join(dir, "missing.toml"),
		"-db", filepath.Join(dir, "client.db"),
	}
	return append(args, extra...)
}

func TestRun_Version(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, run([]string{"-version"}, strings.NewReader(""), &out, io.Discard))
	assert.Contains(t, out.String(), "todosync client")
	assert.Contains(t, out.String(), "Version:    dev")
}

func TestRun_NoCommandWithoutTerminal(t *testing.T) {
	var out bytes.Buffer
	err := run(baseArgs(t), strings.NewReader(""), &out, io.Discard)

	require.ErrorIs(t, err, errNoCommand)
	assert.Contains(t, out.String(), "Usage:")
}

func TestRun_UnknownCommand(t *testing.T) {
	err := run(baseArgs(t, "frobnicate"), strings.NewReader(""), io.Discard, io.Discard)
	require.ErrorIs(t, err, cli.ErrUnknownCommand)
}

func TestRun_InvalidServerURL(t *testing.T) {
	err := run(baseArgs(t, "-server", "not a url", "list"), strings.NewReader(""), io.Discard, io.Discard)
	assert.ErrorContains(t, err, "invalid client config")
}

func TestRun_ListAgainstServer(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(api.TodoListResponse{
			Todos: []api.Todo{
				{ID: 1, Body: "buy milk", Status: "pending"},
				{ID: 2, Body: "walk dog", Status: "completed"},
			},
		})
	}))
	defer srv.Close()

	var out bytes.Buffer
	args := baseArgs(t, "-server", srv.URL, "-token", "secret-token", "list", "pending")
	require.NoError(t, run(args, strings.NewReader(""), &out, io.Discard))

	assert.Equal(t, "Bearer secret-token", gotAuth)
	assert.Contains(t, out.String(), "buy milk")
	assert.NotContains(t, out.String(), "walk dog")
}

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		wantCmd  string
		wantArgs []string
		terminal bool
	}{
		{name: "terminal without args starts tui", terminal: true, wantCmd: "tui"},
		{name: "pipe without args has no command", terminal: false, wantCmd: ""},
		{name: "explicit command", args: []string{"done", "3"}, terminal: true, wantCmd: "done", wantArgs: []string{"3"}},
		{name: "explicit tui", args: []string{"tui"}, terminal: false, wantCmd: "tui", wantArgs: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, args := resolveCommand(tt.args, tt.terminal)
			assert.Equal(t, tt.wantCmd, cmd)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestLogOutput_CommandWritesToStderr(t *testing.T) {
	var stderr bytes.Buffer
	out, closeLog := logOutput("list", filepath.Join(t.TempDir(), "client.db"), &stderr)
	defer closeLog()

	slog.New(slog.NewTextHandler(out, nil)).Warn("Mutation failed")
	assert.Contains(t, stderr.String(), "Mutation failed")
}

func TestLogOutput_TUIKeepsStderrClean(t *testing.T) {
	var stderr bytes.Buffer
	dir := filepath.Join(t.TempDir(), "nested")

	out, closeLog := logOutput("tui", filepath.Join(dir, "client.db"), &stderr)
	slog.New(slog.NewTextHandler(out, nil)).Error("Refetch after mutation failed")
	closeLog()

	assert.Empty(t, stderr.String())
	data, err := os.ReadFile(filepath.Join(dir, logFileName))
	require.NoError(t, err)
	assert.Contains(t, string(data), "Refetch after mutation failed")
}

func TestLogOutput_TUIUnwritableDirDiscards(t *testing.T) {
	var stderr bytes.Buffer
	// каталог базы занят обычным файлом
	blocker := filepath.Join(t.TempDir(), "blocker")
	require.NoError(t, os.WriteFile(blocker, nil, 0o600))

	out, closeLog := logOutput("tui", filepath.Join(blocker, "client.db"), &stderr)
	defer closeLog()

	assert.Equal(t, io.Discard, out)
	slog.New(slog.NewTextHandler(out, nil)).Warn("breaker state changed")
	assert.Empty(t, stderr.String())
}
