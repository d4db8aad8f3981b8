package scanner

import "strings"

// DefaultTypes is the extension set used when a group declares no types.
var DefaultTypes = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".svg"}

// NormalizeExtension canonicalizes an extension token to a lower-case
// ".ext" form. Tokens already carrying a leading dot pass through
// (lower-cased), so normalizing twice equals normalizing once. An empty
// token stays empty.
func NormalizeExtension(token string) string {
	t := strings.ToLower(strings.TrimSpace(token))
	if t == "" {
		return ""
	}
	if !strings.HasPrefix(t, ".") {
		t = "." + t
	}
	return t
}
