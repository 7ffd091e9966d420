package cli

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/noodlebox/currenttime/internal/errors"
)

func TestAddGlobalFlags(t *testing.T) {
	cmd := newRootCmd(&GlobalFlags{}, BuildInfo{})
	pf := cmd.PersistentFlags()

	for flag := range flagKeys {
		assert.NotNil(t, pf.Lookup(flag), flag)
	}
	assert.Equal(t, "o", pf.Lookup("output").Shorthand)
	assert.Equal(t, "f", pf.Lookup("format").Shorthand)
	assert.Equal(t, "%h:%m:%s %a", pf.Lookup("format").DefValue)
	assert.Equal(t, "Local", pf.Lookup("tz").DefValue)
	assert.NotNil(t, pf.Lookup("config"))
	assert.NotNil(t, pf.Lookup("verbose"))
	assert.NotNil(t, pf.Lookup("quiet"))
}

func TestExitCodeForError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, ExitSuccess},
		{"output", errors.Wrap(errors.ErrInvalidOutputFormat, "bad"), ExitInvalidInput},
		{"instant", errors.ErrInvalidInstant, ExitInvalidInput},
		{"timezone", errors.ErrInvalidTimezone, ExitInvalidInput},
		{"symbol", errors.ErrInvalidSymbol, ExitInvalidInput},
		{"cycle", errors.ErrSymbolCycle, ExitInvalidInput},
		{"count", errors.ErrInvalidCount, ExitInvalidInput},
		{"other", fmt.Errorf("boom"), ExitError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeForError(tt.err))
		})
	}
}
