package registration

import (
	"strings"

	"github.com/heartmarshall/wordassist-backend/internal/domain"
)

const fence = "```"

// ExtractCodeAndLanguage splits generated Markdown into a language tag and
// a code body. A fenced block yields the info string as language
// (plaintext when blank) and the lines between the fences as code.
// Anything else is returned whole as plaintext.
func ExtractCodeAndLanguage(raw string) (language, code string) {
	text := strings.TrimSpace(strings.ReplaceAll(raw, "\r\n", "\n"))
	if !strings.HasPrefix(text, fence) {
		return domain.DefaultCodeLanguage, raw
	}

	lines := strings.Split(text, "\n")

	language = strings.TrimSpace(strings.TrimPrefix(lines[0], fence))
	if language == "" {
		language = domain.DefaultCodeLanguage
	}

	body := lines[1:]
	if n := len(body); n > 0 && strings.HasPrefix(strings.TrimSpace(body[n-1]), fence) {
		body = body[:n-1]
	}

	return language, strings.Join(body, "\n")
}
