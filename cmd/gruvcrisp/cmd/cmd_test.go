package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/amirkhaki/gruvcrisp/pkg/config"
	"github.com/amirkhaki/gruvcrisp/pkg/trace"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the scratch file into a temp dir and clears settings that
// could leak in from the environment or an earlier test.
func isolate(t *testing.T) {
	t.Helper()
	t.Setenv("GRUVCRISP_SCRATCH_FILE", filepath.Join(t.TempDir(), "test_gruvbox.txt"))
	for _, k := range []string{config.PathEnv, "GRUVCRISP_TRACE", "GRUVCRISP_SEED", "GRUVCRISP_DEBUG"} {
		t.Setenv(k, "")
	}

	cfgFile, verbose, seed, traceFile, noColor = "", false, 0, "", false
	names, list = []string{}, false
	// Flags remember being set across Execute calls on the same command.
	for _, fs := range []*pflag.FlagSet{toolsCmd.PersistentFlags(), demoCmd.Flags()} {
		fs.VisitAll(func(f *pflag.Flag) { f.Changed = false })
	}
}

func capture(t *testing.T, c *cobra.Command) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	c.SetOut(&out)
	c.SetErr(&errOut)
	t.Cleanup(func() {
		c.SetOut(nil)
		c.SetErr(nil)
		c.SetArgs(nil)
	})
	return &out, &errOut
}

// runMain runs the plain program the way Execute does.
func runMain(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolate(t)
	out, _ := capture(t, rootCmd)
	err := runRoot(args)
	return out.String(), err
}

// runTools runs a gruvcrisp-tools command line.
func runTools(t *testing.T, args ...string) (string, error) {
	t.Helper()
	isolate(t)
	out, _ := capture(t, toolsCmd)
	toolsCmd.SetArgs(args)
	err := toolsCmd.Execute()
	return out.String(), err
}

func TestRootEchoesArgs(t *testing.T) {
	out, err := runMain(t, "one", "two")
	require.NoError(t, err)

	assert.Contains(t, out, "Command line arguments:\n  argv[1]: one\n  argv[2]: two\n\n")
	assert.Contains(t, out, "Number of set bits: 3")
	assert.Contains(t, out, "Program completed successfully!")
}

func TestRootEchoesAnything(t *testing.T) {
	cases := [][]string{
		{"-x"},
		{"--foo=bar"},
		{"-v"},
		{"--help"},
		{"trace"},
		{"demo", "-n", "bits"},
		{"__complete", "x"},
		{"--", "--seed", "3"},
	}
	for _, args := range cases {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			out, err := runMain(t, args...)
			require.NoError(t, err)

			var want strings.Builder
			for i, a := range args {
				fmt.Fprintf(&want, "  argv[%d]: %s\n", i+1, a)
			}
			assert.Contains(t, out, "Command line arguments:\n"+want.String())
			assert.Contains(t, out, "Program completed successfully!")
		})
	}
}

func TestRootWithoutArgs(t *testing.T) {
	out, err := runMain(t)
	require.NoError(t, err)
	assert.NotContains(t, out, "Command line arguments")
	assert.Contains(t, out, "Pointer Demonstration")
}

func TestRootSettingsFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.trace")
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "gruvcrisp.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("array_len: 4\nseed: 11\n"), 0o644))

	out, _ := capture(t, rootCmd)
	t.Setenv(config.PathEnv, cfgPath)
	t.Setenv("GRUVCRISP_TRACE", path)
	require.NoError(t, runRoot([]string{"--seed", "3"}))

	assert.Contains(t, out.String(), "Array resized to 8 elements")
	assert.Contains(t, out.String(), "  argv[1]: --seed\n  argv[2]: 3\n")
	assert.Equal(t, int64(11), cfg.Seed)

	log, err := trace.LoadTrace(path)
	require.NoError(t, err)
	assert.Equal(t, 10, log.Header.Events)
}

func TestRootBadConfigFallsBack(t *testing.T) {
	isolate(t)
	cfgPath := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("array_len: [not a number\n"), 0o644))
	t.Setenv(config.PathEnv, cfgPath)

	out, _ := capture(t, rootCmd)
	require.NoError(t, runRoot([]string{"x"}))
	assert.Equal(t, 10, cfg.ArrayLen)
	assert.Contains(t, out.String(), "Array resized to 20 elements")
	assert.Contains(t, out.String(), "  argv[1]: x\n")
}

func TestToolsTraceRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.trace")
	_, err := runTools(t, "--trace", path, "demo", "-n", "bits", "-n", "records")
	require.NoError(t, err)

	out, err := runTools(t, "trace", path)
	require.NoError(t, err)
	assert.Contains(t, out, "4 events, 0 failed")
	assert.Contains(t, out, "bits")
	assert.Contains(t, out, "records")
}

func TestDemoList(t *testing.T) {
	out, err := runTools(t, "demo", "--list")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "pointers"))
	assert.True(t, strings.HasPrefix(lines[4], "records"))
}

func TestDemoSelected(t *testing.T) {
	out, err := runTools(t, "--seed", "3", "demo", "-n", "bits")
	require.NoError(t, err)
	assert.Contains(t, out, "After toggling bit 5: 0x000000A1")
	assert.NotContains(t, out, "Pointer Demonstration")
	assert.Equal(t, int64(3), cfg.Seed)
}

func TestDemoRequiresName(t *testing.T) {
	_, err := runTools(t, "demo")
	assert.ErrorContains(t, err, "no demo selected")
}

func TestToolsConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gruvcrisp.yaml")
	require.NoError(t, os.WriteFile(path, []byte("array_len: 4\nseed: 11\n"), 0o644))

	out, err := runTools(t, "--config", path, "demo", "-n", "memory")
	require.NoError(t, err)
	assert.Contains(t, out, "Array resized to 8 elements")
	assert.Equal(t, int64(11), cfg.Seed)
}
