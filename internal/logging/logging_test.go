package logging

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want hclog.Level
	}{
		{"default", Options{}, hclog.Info},
		{"named", Options{Level: "warn"}, hclog.Warn},
		{"unknown", Options{Level: "chatty"}, hclog.Info},
		{"verbose", Options{Level: "error", Verbose: true}, hclog.Debug},
		{"quiet", Options{Level: "debug", Quiet: true}, hclog.Error},
		{"verbose wins", Options{Verbose: true, Quiet: true}, hclog.Debug},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Level(tt.opts))
		})
	}
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Level: "info", Output: &buf})

	logger.Debug("hidden")
	logger.Info("shown", "key", "value")

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "tonal: shown")
	assert.Contains(t, out, "key=value")
	assert.NotContains(t, out, "\x1b[")
}

func TestNewName(t *testing.T) {
	var buf bytes.Buffer
	New(Options{Name: "extract", Output: &buf}).Warn("careful")
	assert.Contains(t, buf.String(), "extract: careful")
}
