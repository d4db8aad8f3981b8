package generator

import (
	"fmt"
	"path"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Scope deduplicates synthesized identifiers within one generated class.
type Scope struct {
	used map[string]bool
}

// NewScope creates an empty identifier scope.
func NewScope() *Scope {
	return &Scope{used: make(map[string]bool)}
}

// Synthesize converts a discovered file name into a collision-free
// lowerCamelCase Dart identifier. The policy is deterministic: strip the
// extension, split on runs of non-alphanumeric characters, lower-case the
// first word and title-case the rest, and prefix "a" when the result
// would start with a digit. Within a scope the first occurrence keeps the
// bare name; later collisions get a "_2", "_3", ... suffix, so two files
// differing only by extension come out disambiguated.
func (s *Scope) Synthesize(fileName string) string {
	base := sanitize(fileName)
	name := base
	for i := 2; s.used[name]; i++ {
		name = fmt.Sprintf("%s_%d", base, i)
	}
	s.used[name] = true
	return name
}

func sanitize(fileName string) string {
	stem := strings.TrimSuffix(fileName, path.Ext(fileName))
	words := splitWords(stem)
	if len(words) == 0 {
		return "asset"
	}

	title := cases.Title(language.English)
	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, word := range words[1:] {
		b.WriteString(title.String(strings.ToLower(word)))
	}

	name := b.String()
	if name[0] >= '0' && name[0] <= '9' {
		name = "a" + name
	}
	return name
}

// splitWords breaks a file name stem into words on runs of
// non-alphanumeric characters and on camel-case boundaries, so both
// "my-cool_icon" and "OpenSans" split cleanly.
func splitWords(stem string) []string {
	var words []string
	var current []rune
	runes := []rune(stem)

	flush := func() {
		if len(current) > 0 {
			words = append(words, string(current))
			current = nil
		}
	}

	for i, r := range runes {
		if !isASCIIAlnum(r) {
			flush()
			continue
		}
		if len(current) > 0 && r >= 'A' && r <= 'Z' {
			last := current[len(current)-1]
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if isLowerOrDigit(last) || (last >= 'A' && last <= 'Z' && nextLower) {
				flush()
			}
		}
		current = append(current, r)
	}
	flush()
	return words
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}

// SnakeCase converts a class name to the snake_case stem of its generated
// file, e.g. "MyIcons" becomes "my_icons".
func SnakeCase(name string) string {
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if r >= 'A' && r <= 'Z' {
			prevLower := i > 0 && isLowerOrDigit(runes[i-1])
			nextLower := i+1 < len(runes) && runes[i+1] >= 'a' && runes[i+1] <= 'z'
			if i > 0 && (prevLower || nextLower) {
				b.WriteByte('_')
			}
			b.WriteRune(r - 'A' + 'a')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func isLowerOrDigit(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
}
