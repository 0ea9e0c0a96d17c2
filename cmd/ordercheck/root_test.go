package main

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(out)
	rootCmd.SetErr(errOut)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetIn(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		for _, name := range []string{"pipe", "format", "color", "summary"} {
			f := rootCmd.Flags().Lookup(name)
			f.Value.Set(f.DefValue)
			f.Changed = false
		}
	})
	code := run(args)
	return code, out.String(), errOut.String()
}

func writeWords(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "words.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRoot_PipeFlag(t *testing.T) {
	for _, flag := range []string{"-p", "--pipe"} {
		code, out, _ := execute(t, "abc\ncba\nbac\n\naa\n", flag)
		assert.Equal(t, 0, code)
		assert.Equal(t, "abc IN ORDER\ncba REVERSE ORDER\nbac NOT IN ORDER\n IN ORDER\naa IN ORDER\n", out)
	}
}

func TestRoot_PathArgument(t *testing.T) {
	code, out, _ := execute(t, "", writeWords(t, "zyx\n"))
	assert.Equal(t, 0, code)
	assert.Equal(t, "zyx REVERSE ORDER\n", out)
}

func TestRoot_PathBeforePipeFlag(t *testing.T) {
	code, out, _ := execute(t, "abc\n", writeWords(t, "cba\n"), "-p")
	assert.Equal(t, 0, code)
	assert.Equal(t, "cba REVERSE ORDER\n", out)
}

func TestRoot_PathAfterPipeFlagIsNotAPath(t *testing.T) {
	code, out, _ := execute(t, "zyx\n", "-p", writeWords(t, "bac\n"))
	assert.Equal(t, 0, code)
	assert.Equal(t, "zyx REVERSE ORDER\n", out)
}

func TestRoot_NoInput(t *testing.T) {
	code, out, errOut := execute(t, "abc\n")
	assert.Equal(t, 1, code)
	assert.Equal(t, "No input provided\n", out)
	assert.Empty(t, errOut)
}

func TestRoot_UnreadablePathWithoutPipe(t *testing.T) {
	code, out, _ := execute(t, "abc\n", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Equal(t, 1, code)
	assert.Equal(t, "No input provided\n", out)
}

func TestRoot_InvalidFormat(t *testing.T) {
	code, _, errOut := execute(t, "abc\n", "-p", "--format", "xml")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "invalid format")
}

func TestVersion(t *testing.T) {
	code, out, _ := execute(t, "", "version")
	assert.Equal(t, 0, code)
	assert.True(t, strings.HasPrefix(out, "ordercheck version "))
}

// TestHelperProcess is not a real test. It runs the CLI when re-executed
// by TestRoot_InterruptWhileReadingStdin.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("ORDERCHECK_HELPER_PROCESS") != "1" {
		return
	}
	os.Exit(run([]string{"-p"}))
}

func TestRoot_InterruptWhileReadingStdin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("SIGINT delivery is not supported on windows")
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestHelperProcess$")
	cmd.Env = append(os.Environ(), "ORDERCHECK_HELPER_PROCESS=1")
	stdin, err := cmd.StdinPipe()
	require.NoError(t, err)
	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)
	require.NoError(t, cmd.Start())
	defer stdin.Close()

	// Once the first result is out, the process is blocked reading the next line.
	_, err = io.WriteString(stdin, "abc\n")
	require.NoError(t, err)
	line, err := bufio.NewReader(stdout).ReadString('\n')
	require.NoError(t, err)
	assert.Equal(t, "abc IN ORDER\n", line)

	require.NoError(t, cmd.Process.Signal(os.Interrupt))

	done := make(chan error, 1)
	go func() { done <- cmd.Wait() }()
	select {
	case err := <-done:
		var exitErr *exec.ExitError
		require.ErrorAs(t, err, &exitErr)
		assert.False(t, exitErr.Success())
	case <-time.After(5 * time.Second):
		cmd.Process.Kill()
		t.Fatal("process still running after SIGINT")
	}
}
