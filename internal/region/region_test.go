package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const js = `import { greet } from "./greet.js";
// #region setup
const el = document.querySelector("button");
// #endregion setup
// #region handler
el.addEventListener("click", () => greet());
// #endregion
`

func TestSelect(t *testing.T) {
	got, err := Select(js, "setup")
	require.NoError(t, err)
	assert.Equal(t, "const el = document.querySelector(\"button\");\n", got)
}

func TestSelectUnnamedEnd(t *testing.T) {
	got, err := Select(js, "handler")
	require.NoError(t, err)
	assert.Equal(t, "el.addEventListener(\"click\", () => greet());\n", got)
}

func TestSelectHTMLComments(t *testing.T) {
	html := "<main>\n<!-- #region body -->\n<p>hi</p>\n<!-- #endregion body -->\n</main>\n"

	got, err := Select(html, "body")
	require.NoError(t, err)
	assert.Equal(t, "<p>hi</p>\n", got)
}

func TestSelectNested(t *testing.T) {
	css := "/* #region all */\na{}\n/* #region inner */\nb{}\n/* #endregion inner */\n/* #endregion all */\n"

	got, err := Select(css, "all")
	require.NoError(t, err)
	assert.Equal(t, "a{}\nb{}\n", got)
}

func TestSelectMissing(t *testing.T) {
	_, err := Select(js, "nope")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestSelectMissingEnd(t *testing.T) {
	_, err := Select("// #region open\ncode\n", "open")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStrip(t *testing.T) {
	got := Strip(js)

	assert.NotContains(t, got, "#region")
	assert.NotContains(t, got, "#endregion")
	assert.Contains(t, got, "el.addEventListener")
}
