package registration

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractCodeAndLanguage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		raw      string
		wantLang string
		wantCode string
	}{
		{
			name:     "fenced with language",
			raw:      "```python\nprint(1)\n```",
			wantLang: "python",
			wantCode: "print(1)",
		},
		{
			name:     "unfenced",
			raw:      "print(1)",
			wantLang: "plaintext",
			wantCode: "print(1)",
		},
		{
			name:     "fence without language",
			raw:      "```\nls -la\n```",
			wantLang: "plaintext",
			wantCode: "ls -la",
		},
		{
			name:     "multi-line body keeps indentation",
			raw:      "```go\nfunc f() {\n\treturn\n}\n```",
			wantLang: "go",
			wantCode: "func f() {\n\treturn\n}",
		},
		{
			name:     "surrounding whitespace and CRLF",
			raw:      "  ```js\r\nconsole.log(1)\r\n```  \n",
			wantLang: "js",
			wantCode: "console.log(1)",
		},
		{
			name:     "missing closing fence keeps last line",
			raw:      "```sql\nSELECT 1;",
			wantLang: "sql",
			wantCode: "SELECT 1;",
		},
		{
			name:     "only opening fence",
			raw:      "```rust",
			wantLang: "rust",
			wantCode: "",
		},
		{
			name:     "fence later in text is not a block",
			raw:      "Here:\n```go\nx := 1\n```",
			wantLang: "plaintext",
			wantCode: "Here:\n```go\nx := 1\n```",
		},
		{
			name:     "empty input",
			raw:      "",
			wantLang: "plaintext",
			wantCode: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			lang, code := ExtractCodeAndLanguage(tt.raw)
			assert.Equal(t, tt.wantLang, lang)
			assert.Equal(t, tt.wantCode, code)
		})
	}
}

func TestExtractCodeAndLanguage_RoundTrip(t *testing.T) {
	t.Parallel()

	lang, code := ExtractCodeAndLanguage("```python\nprint(1)\n```")
	lang2, code2 := ExtractCodeAndLanguage("```" + lang + "\n" + code + "\n```")

	assert.Equal(t, lang, lang2)
	assert.Equal(t, code, code2)
}
