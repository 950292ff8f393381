package tui

import (
	"net/url"
	"strings"
	"unicode"
)

// ParseDroppedPaths splits the text a terminal pastes when files are dropped
// on it. Terminals either shell-quote the paths, backslash-escape spaces, or
// send file:// URIs, one per line.
func ParseDroppedPaths(text string) []string {
	var (
		paths   []string
		cur     strings.Builder
		quote   rune
		escaped bool
		inToken bool
	)

	flush := func() {
		if inToken {
			paths = append(paths, fromURI(cur.String()))
		}
		cur.Reset()
		inToken = false
	}

	for _, r := range strings.TrimSpace(text) {
		switch {
		case escaped:
			cur.WriteRune(r)
			escaped = false
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				cur.WriteRune(r)
			}
		case r == '\\':
			escaped = true
			inToken = true
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			flush()
		default:
			cur.WriteRune(r)
			inToken = true
		}
	}
	flush()

	return paths
}

func fromURI(p string) string {
	if !strings.HasPrefix(p, "file://") {
		return p
	}
	u, err := url.Parse(p)
	if err != nil || u.Path == "" {
		return strings.TrimPrefix(p, "file://")
	}
	return u.Path
}
