package preview

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/myrt-theme/myrt/internal/style"
	"github.com/myrt-theme/myrt/internal/tokens"
)

func TestRenderPlain(t *testing.T) {
	tree, err := tokens.BuildDefault(style.Dark, "Myrt Dark")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tree, Options{Plain: true}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Myrt Dark (dark)\n"))
	assert.Contains(t, out, "syntax.keyword")
	assert.Contains(t, out, tree.Syntax.Keyword)
	assert.Contains(t, out, strings.Join(tree.Scale.Gray[:], " "))
	assert.NotContains(t, out, "\x1b[")
}

func TestRenderStyled(t *testing.T) {
	tree, err := tokens.BuildDefault(style.Light, "Myrt Light")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, tree, Options{}))
	out := buf.String()

	assert.Contains(t, out, "Myrt Light (light)")
	for _, label := range []string{"scale", "syntax", "ansi", "success", "danger", "keyword", "comment"} {
		assert.Contains(t, out, label)
	}
}

func TestSwatchColorCompositesAlpha(t *testing.T) {
	tree, err := tokens.BuildDefault(style.Light, "Myrt Light")
	require.NoError(t, err)

	st := Styles{canvas: tree.UI.BG.Canvas}
	assert.Equal(t, "#d2e3f8", string(st.color(tree.Component.Editor.SelectionBg)))
	assert.Equal(t, "", string(st.color("nope")))
}

func TestRenderRequiresTree(t *testing.T) {
	require.Error(t, Render(&bytes.Buffer{}, nil, Options{}))
}
