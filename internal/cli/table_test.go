package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteTableRightAlignsColumns(t *testing.T) {
	var buf bytes.Buffer
	err := writeTable(&buf, []string{"PATH", "SIZE"}, [][]string{
		{"dist/vscode/dark.json", "26 kB"},
		{"dist/ghostty/myrt-dark", "512 B"},
		{"x", "1.2 MB"},
	}, 1)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasSuffix(lines[0], "  SIZE"), lines[0])
	assert.True(t, strings.HasSuffix(lines[1], " 26 kB"), lines[1])
	assert.True(t, strings.HasSuffix(lines[2], " 512 B"), lines[2])
	assert.True(t, strings.HasSuffix(lines[3], "1.2 MB"), lines[3])
	for _, line := range lines[1:] {
		assert.Equal(t, len(lines[0]), len(line))
	}
}

func TestWriteTableLeftAlignsByDefault(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeTable(&buf, []string{"TOKEN", "COLOR"}, [][]string{
		{"syntax.keyword", "#d73a49"},
		{"ui.bg.canvas", "#fff"},
	}))
	assert.Equal(t, "TOKEN           COLOR\nsyntax.keyword  #d73a49\nui.bg.canvas    #fff\n", buf.String())
}

func TestAlignRightDoesNotMutateRows(t *testing.T) {
	rows := [][]string{{"a", "1"}, {"b", "100"}}
	_, padded := alignRight([]string{"N", "V"}, rows, []int{1, 5})
	assert.Equal(t, "1", rows[0][1])
	assert.Equal(t, "  1", padded[0][1])
}
