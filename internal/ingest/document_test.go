package ingest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainText_PassesThroughProse(t *testing.T) {
	got := PlainText("I have three years of Python experience.")
	assert.Equal(t, "I have three years of Python experience.", got)
}

func TestPlainText_CollapsesWhitespace(t *testing.T) {
	got := PlainText("line one\n\n   line   two\t tabbed")
	assert.Equal(t, "line one line two tabbed", got)
}

func TestPlainText_StripsMarkup(t *testing.T) {
	input := "<html><body>\n<h1>Resume</h1>\n<p>Python developer</p>\n</body></html>"
	got := PlainText(input)

	assert.Equal(t, "Resume Python developer", got)
	assert.NotContains(t, got, "<")
}

func TestPlainText_RemovesScriptAndStyle(t *testing.T) {
	input := `<html><head><style>body { color: red; }</style></head>
<body><script>alert("x")</script><p>visible content</p>
<nav>menu links</nav><footer>footer text</footer></body></html>`
	got := PlainText(input)

	assert.Equal(t, "visible content", got)
	assert.NotContains(t, got, "alert")
	assert.NotContains(t, got, "color: red")
	assert.NotContains(t, got, "menu links")
}

func TestPlainText_ProseWithAngleBracketsNotTreatedAsHTML(t *testing.T) {
	input := "salary expectation < 100k, experience > 2 years"
	got := PlainText(input)
	assert.Equal(t, input, got)
}

func TestLooksLikeHTML(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"full document", "<html lang=\"en\"><body>x</body></html>", true},
		{"fragment", "<div class=\"a\">x</div>", true},
		{"heading", "<h2>Skills</h2>", true},
		{"plain text", "just some words", false},
		{"math comparison", "a < b and b > c", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, looksLikeHTML(tt.content))
		})
	}
}
