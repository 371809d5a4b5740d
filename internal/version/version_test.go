package version

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInfoString(t *testing.T) {
	tests := []struct {
		name string
		info Info
		want string
	}{
		{
			name: "development build",
			info: Info{Version: "dev", Commit: "unknown", Date: "unknown", GoVersion: "go1.25.1", Platform: "linux/amd64"},
			want: "tonal version dev (go1.25.1, linux/amd64)",
		},
		{
			name: "release build",
			info: Info{Version: "1.2.0", Commit: "0123456789abcdef", Date: "2025-01-02T03:04:05Z", GoVersion: "go1.25.1", Platform: "darwin/arm64"},
			want: "tonal version 1.2.0 (commit: 01234567, built: 2025-01-02T03:04:05Z, go1.25.1, darwin/arm64)",
		},
		{
			name: "short commit is kept whole",
			info: Info{Version: "1.2.0", Commit: "abc", Date: "today", GoVersion: "go1.25.1", Platform: "linux/arm64"},
			want: "tonal version 1.2.0 (commit: abc, built: today, go1.25.1, linux/arm64)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.info.String())
		})
	}
}

func TestGet(t *testing.T) {
	info := Get()
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
	assert.True(t, strings.HasPrefix(String(), "tonal version "))
}
