package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/glyphlog/glyph/core"
	"github.com/glyphlog/glyph/handler"
)

func newTestEngine(t *testing.T) (*Engine, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	e := New(WithConsole(handler.NewConsoleSinkWriter(&buf, false)))
	t.Cleanup(e.CloseLogFile)
	return e, &buf
}

func TestEngine_LevelGate(t *testing.T) {
	levels := []core.Level{core.DebugLevel, core.InfoLevel, core.WarnLevel, core.ErrorLevel, core.FatalLevel}
	thresholds := append(levels, core.NoneLevel)

	for _, threshold := range thresholds {
		for _, level := range levels {
			e, buf := newTestEngine(t)
			e.SetLevel(threshold)
			e.Log(level, "GATE", "message", nil, "")

			emitted := buf.Len() > 0
			want := level >= threshold
			require.Equal(t, want, emitted,
				"threshold %v, event %v", threshold, level)
		}
	}
}

func TestEngine_NoneIsNeverAnEventLevel(t *testing.T) {
	e, buf := newTestEngine(t)
	e.SetLevel(core.DebugLevel)
	e.Log(core.NoneLevel, "GATE", "should not appear", nil, "")
	require.Zero(t, buf.Len())
}

func TestEngine_SetLevelRejectsOutOfRange(t *testing.T) {
	e, _ := newTestEngine(t)
	e.SetLevel(core.WarnLevel)
	e.SetLevel(core.Level(-3))
	e.SetLevel(core.Level(99))
	require.Equal(t, core.WarnLevel, e.Level())
}

func TestEngine_DestinationMatrix(t *testing.T) {
	logPath := func(t *testing.T) string {
		return filepath.Join(t.TempDir(), "app.log")
	}

	tests := []struct {
		name        string
		output      core.Output
		openFile    bool
		wantConsole bool
		wantFile    bool
	}{
		{"console only", core.OutputConsole, true, true, false},
		{"file only", core.OutputFile, true, false, true},
		{"both", core.OutputBoth, true, true, true},
		{"none", core.OutputNone, true, false, false},
		{"file destination without open file", core.OutputFile, false, false, false},
		{"both without open file", core.OutputBoth, false, true, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, buf := newTestEngine(t)
			path := logPath(t)
			if tt.openFile {
				require.True(t, e.SetLogFile(path))
			}
			e.SetOutput(tt.output)

			e.Log(core.InfoLevel, "DEST", "routed message", nil, "")
			e.CloseLogFile()

			require.Equal(t, tt.wantConsole, strings.Contains(buf.String(), "routed message"))

			data, err := os.ReadFile(path)
			if !tt.openFile {
				require.True(t, os.IsNotExist(err))
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantFile, strings.Contains(string(data), "routed message"))
		})
	}
}

func TestEngine_FileRoundTrip(t *testing.T) {
	e, _ := newTestEngine(t)
	path := filepath.Join(t.TempDir(), "app.log")
	require.True(t, e.SetLogFile(path))
	e.SetOutput(core.OutputFile)

	e.Log(core.ErrorLevel, "HTTP", "request failed",
		[]string{"status: 404", "url: /users/7"}, "server.go:10 [serve]")
	e.CloseLogFile()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	for _, want := range []string{"HTTP", "request failed", "status: 404", "url: /users/7", "server.go:10 [serve]"} {
		require.Contains(t, text, want)
	}
	require.NotContains(t, text, "\x1b[", "file output must be free of escape sequences")
}

func TestEngine_AppendAcrossReopen(t *testing.T) {
	e, _ := newTestEngine(t)
	path := filepath.Join(t.TempDir(), "app.log")
	e.SetOutput(core.OutputFile)

	require.True(t, e.SetLogFile(path))
	for i := 0; i < 3; i++ {
		e.Info("SESSION", "first batch")
	}
	e.CloseLogFile()

	require.True(t, e.SetLogFile(path))
	for i := 0; i < 2; i++ {
		e.Info("SESSION", "second batch")
	}
	e.CloseLogFile()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(data)

	require.Equal(t, 3, strings.Count(text, "first batch"))
	require.Equal(t, 2, strings.Count(text, "second batch"))
	require.Less(t, strings.LastIndex(text, "first batch"), strings.Index(text, "second batch"),
		"all first-session messages precede the second session")
}

func TestEngine_SetLogFileFailureSwallowed(t *testing.T) {
	e, buf := newTestEngine(t)
	require.False(t, e.SetLogFile(filepath.Join(t.TempDir(), "missing", "dir", "app.log")))
	require.Empty(t, e.LogFilePath())

	// A failed open leaves "no file"; FILE-destined output is a no-op.
	e.SetOutput(core.OutputFile)
	e.Log(core.ErrorLevel, "FS", "dropped", nil, "")
	require.Zero(t, buf.Len())
}

func TestEngine_SetLogFileEmptyPath(t *testing.T) {
	e, _ := newTestEngine(t)
	require.False(t, e.SetLogFile(""))
	require.Empty(t, e.LogFilePath())
}

func TestEngine_SetLogFileReplacesOpenFile(t *testing.T) {
	e, _ := newTestEngine(t)
	dir := t.TempDir()
	first := filepath.Join(dir, "first.log")
	second := filepath.Join(dir, "second.log")
	e.SetOutput(core.OutputFile)

	require.True(t, e.SetLogFile(first))
	e.Info("SWAP", "to first")
	require.True(t, e.SetLogFile(second))
	e.Info("SWAP", "to second")
	e.CloseLogFile()

	firstData, err := os.ReadFile(first)
	require.NoError(t, err)
	secondData, err := os.ReadFile(second)
	require.NoError(t, err)

	require.Contains(t, string(firstData), "to first")
	require.NotContains(t, string(firstData), "to second")
	require.Contains(t, string(secondData), "to second")
}

func TestEngine_CloseLogFileIdempotent(t *testing.T) {
	e, _ := newTestEngine(t)
	require.True(t, e.SetLogFile(filepath.Join(t.TempDir(), "app.log")))
	e.CloseLogFile()
	e.CloseLogFile()
	require.Empty(t, e.LogFilePath())
}

func TestEngine_Assert(t *testing.T) {
	e, buf := newTestEngine(t)
	e.SetLevel(core.DebugLevel)

	require.True(t, e.Assert(true, "INVARIANT", "must hold", nil, ""))
	require.Zero(t, buf.Len(), "a passing assert produces no output")

	require.False(t, e.Assert(false, "INVARIANT", "must hold", []string{"got: 7"}, ""))
	out := buf.String()
	require.Contains(t, out, "FATAL")
	require.Contains(t, out, "must hold")
	require.Contains(t, out, "[1] got: 7")
	require.Equal(t, 1, strings.Count(out, "must hold"), "exactly one block emitted")
}

func TestEngine_AssertRespectsThreshold(t *testing.T) {
	e, buf := newTestEngine(t)
	e.SetLevel(core.NoneLevel)
	require.False(t, e.Assert(false, "INVARIANT", "suppressed", nil, ""))
	require.Zero(t, buf.Len(), "NONE threshold suppresses even assertion output")
}

func TestEngine_LoadConfig(t *testing.T) {
	e, _ := newTestEngine(t)
	dir := t.TempDir()

	path := filepath.Join(dir, "app.env")
	require.NoError(t, os.WriteFile(path, []byte("LOG_LEVEL=ERROR\nLOG_LEVEL=INFO\n"), 0o644))
	require.True(t, e.LoadConfig(path))
	require.Equal(t, core.InfoLevel, e.Level(), "last valid occurrence wins")

	// Readable file without a valid level: loaded, threshold untouched.
	bad := filepath.Join(dir, "bad.env")
	require.NoError(t, os.WriteFile(bad, []byte("LOG_LEVEL=NOT_A_LEVEL\n"), 0o644))
	require.True(t, e.LoadConfig(bad))
	require.Equal(t, core.InfoLevel, e.Level())

	// Missing file: not loaded, threshold untouched.
	require.False(t, e.LoadConfig(filepath.Join(dir, "absent.env")))
	require.Equal(t, core.InfoLevel, e.Level())
}

func TestEngine_SeverityHelpersAttachTrace(t *testing.T) {
	e, buf := newTestEngine(t)
	e.Warn("NET", "slow response")
	out := buf.String()
	require.Contains(t, out, "at: engine_test.go:")
	require.Contains(t, out, "[TestEngine_SeverityHelpersAttachTrace]")
}

func TestEngine_FatalDoesNotExit(t *testing.T) {
	e, buf := newTestEngine(t)
	e.Fatal("SHUTDOWN", "still alive")
	require.Contains(t, buf.String(), "still alive")
}
