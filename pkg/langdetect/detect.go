// Package langdetect guesses the language of untagged code blocks so the
// renderer can attach a language-* class to them.
package langdetect

import (
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// minYAMLKeys is the number of key: value lines needed to call content YAML.
const minYAMLKeys = 2

//nolint:gochecknoglobals // Read-only classifier candidate list.
var candidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Markdown", "Dockerfile",
}

// rule matches content that is highly indicative of one language.
type rule struct {
	lang  string
	match func(code, trimmed string) bool
}

//nolint:gochecknoglobals // Read-only rule table, checked in order.
var rules = []rule{
	{"go", func(_, trimmed string) bool {
		return strings.HasPrefix(trimmed, "package ")
	}},
	{"python", func(code, _ string) bool {
		return (strings.Contains(code, "def ") && strings.Contains(code, "):")) ||
			strings.Contains(code, "__name__") ||
			(strings.Contains(code, "from ") && strings.Contains(code, "import ") && !strings.Contains(code, "import ("))
	}},
	{"html", func(_, trimmed string) bool {
		lower := strings.ToLower(trimmed)
		return strings.Contains(lower, "<!doctype html") || strings.Contains(lower, "<html") ||
			strings.Contains(lower, "<body>")
	}},
	{"json", func(_, trimmed string) bool {
		return (strings.HasPrefix(trimmed, "{") || strings.HasPrefix(trimmed, "[")) &&
			strings.Contains(trimmed, `"`)
	}},
	{"dockerfile", func(code, trimmed string) bool {
		return strings.HasPrefix(trimmed, "FROM ") ||
			(strings.Contains(code, "WORKDIR ") && strings.Contains(code, "COPY "))
	}},
	{"sql", func(_, trimmed string) bool {
		upper := strings.ToUpper(trimmed)
		for _, kw := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE "} {
			if strings.HasPrefix(upper, kw) {
				return true
			}
		}
		return false
	}},
	{"rust", func(code, _ string) bool {
		return strings.Contains(code, "fn main()") || strings.Contains(code, "println!") ||
			strings.Contains(code, "let mut ")
	}},
	{"javascript", func(code, _ string) bool {
		return strings.Contains(code, "=>") || strings.Contains(code, "const ") ||
			strings.Contains(code, "console.log")
	}},
	{"yaml", func(code, _ string) bool {
		return yamlKeys(code) >= minYAMLKeys
	}},
}

// Detect returns a lowercase fence tag for code, or "" when the language
// cannot be determined with confidence.
func Detect(code string) string {
	trimmed := strings.TrimSpace(code)
	if trimmed == "" {
		return ""
	}

	if lang, safe := enry.GetLanguageByShebang([]byte(code)); safe {
		return normalize(lang)
	}

	for _, r := range rules {
		if r.match(code, trimmed) {
			return r.lang
		}
	}

	if lang, safe := enry.GetLanguageByClassifier([]byte(code), candidates); safe && lang != "" {
		return normalize(lang)
	}

	return ""
}

// yamlKeys counts lines that look like YAML mappings or sequence items.
func yamlKeys(code string) int {
	count := 0
	for _, line := range strings.Split(code, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.Contains(line, ": ") && !strings.ContainsAny(line, "({") && !strings.HasPrefix(line, `"`) {
			count++
		}
		if strings.HasPrefix(line, "- ") {
			count++
		}
	}
	return count
}

// normalize converts go-enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return "bash"
	}
	return strings.ToLower(lang)
}
