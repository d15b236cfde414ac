package minify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `
<!doctype html>
<html>
  <head>
    <style>
      button { padding: 0 }
    </style>
  </head>
  <body>
    <button>Click me</button>
    <script>
      console.log("test");
    </script>
  </body>
</html>
`

func TestDocument(t *testing.T) {
	got, err := Document(document, Options{CSS: true, JS: true})
	require.NoError(t, err)

	assert.Contains(t, got, "button{padding:0}")
	assert.Contains(t, got, "<button>Click me</button>")
	assert.Contains(t, got, `console.log("test")`)
	assert.NotRegexp(t, `\s\s`, got)
	assert.Less(t, len(got), len(document))
}

func TestDocumentSkipsDisabledLanguages(t *testing.T) {
	got, err := Document(document, Options{})
	require.NoError(t, err)

	assert.Contains(t, got, "button { padding: 0 }")
	assert.Contains(t, got, `console.log("test");`)
	assert.Contains(t, got, "<button>Click me</button>")
}

func TestDocumentModuleScript(t *testing.T) {
	got, err := Document(`<script type="module">
  const answer = 40 + 2;
  console.log(answer);
</script>`, Options{JS: true})
	require.NoError(t, err)

	assert.NotRegexp(t, `\s\s`, got)
	assert.Contains(t, got, "console.log(")
}
