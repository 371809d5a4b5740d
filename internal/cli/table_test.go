package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableAddRow(t *testing.T) {
	table := NewTable([]string{"Name", "Age"})

	table.AddRow([]string{"Alice", "30"})
	table.AddRow([]string{"Bob"})
	table.AddRow([]string{"Charlie", "25", "Extra"})

	require.Len(t, table.rows, 3)
	assert.Equal(t, []string{"Bob", ""}, table.rows[1], "short rows are padded")
	assert.Equal(t, []string{"Charlie", "25"}, table.rows[2], "long rows are truncated")
}

func TestTableRender(t *testing.T) {
	table := NewTable([]string{"Role", "Color", "Tone"})
	table.AddRow([]string{"primary", "#3b693a", "40.0"})
	table.AddRow([]string{"onPrimaryContainer", "#002204", "10.0"})

	want := "" +
		"Role                Color    Tone\n" +
		"------------------  -------  ----\n" +
		"primary             #3b693a  40.0\n" +
		"onPrimaryContainer  #002204  10.0\n"
	assert.Equal(t, want, table.Render())
}

func TestTableRenderEmpty(t *testing.T) {
	assert.Empty(t, NewTable(nil).Render())

	out := NewTable([]string{"Column1", "Column2"}).Render()
	assert.Equal(t, "Column1  Column2\n-------  -------\n", out)
}

func TestTableNoTrailingSpaces(t *testing.T) {
	table := NewTable([]string{"Name", "Value"})
	table.AddRow([]string{"VeryLongName", ""})
	table.AddRow([]string{"x", "1"})

	for _, line := range strings.Split(strings.TrimSuffix(table.Render(), "\n"), "\n") {
		assert.Equal(t, strings.TrimRight(line, " "), line)
	}
}

func TestTableEscapeSequences(t *testing.T) {
	red := "\x1b[48;2;255;0;0m  \x1b[0m"
	blue := "\x1b[48;2;0;0;255m  \x1b[0m"

	table := NewTable([]string{"Swatch", "Name"})
	table.AddRow([]string{red, "red"})
	table.AddRow([]string{blue, "blue"})

	lines := strings.Split(table.Render(), "\n")
	require.GreaterOrEqual(t, len(lines), 4)
	assert.Equal(t, red+"      red", lines[2])
	assert.Equal(t, blue+"      blue", lines[3])
}

func TestVisibleWidth(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"→ ★", 3},
		{"\x1b[31mred\x1b[0m", 3},
		{"\x1b[38;2;1;2;3;48;2;4;5;6m ab \x1b[0m", 4},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, visibleWidth(tt.in))
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		input    string
		width    int
		expected string
	}{
		{"test", 10, "test      "},
		{"hello", 5, "hello"},
		{"world", 3, "world"},
		{"", 5, "     "},
		{"★", 3, "★  "},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, padRight(tt.input, tt.width))
		})
	}
}
