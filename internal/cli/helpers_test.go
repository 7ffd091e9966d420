package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

// testInstant is the instant most tests render: 1:21:46 pm, 24-hour 13:21:46.
const testInstant = "2013-04-01 13:21:46"

// isolate points the user config directory and every CURRENTTIME_
// variable away from the real environment.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	t.Setenv("NO_COLOR", "1")
	for _, key := range []string{"FORMAT", "OUTPUT", "TIMEZONE", "COLOR", "LOG_FILE", "SYMBOLS"} {
		t.Setenv("CURRENTTIME_"+key, "")
	}
	return dir
}

// execute runs the root command with args and returns what it printed to
// stdout and stderr.
func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{Version: "1.2.3", Commit: "abc123", Date: "2013-04-01"})
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err = cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, stderr, err := execute(t, args...)
	require.NoError(t, err, stderr)
	return out
}

func newGoldie(t *testing.T) *goldie.Goldie {
	t.Helper()
	return goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
}
