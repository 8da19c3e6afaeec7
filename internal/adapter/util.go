package adapter

import (
	"regexp"
	"strings"
)

const snippetLimit = 280

var htmlTagRegex = regexp.MustCompile(`<[^>]+>`)

// snippet converts an HTML fragment to a plain-text preview: every tag is
// replaced with a single space, the result is trimmed, then truncated to
// snippetLimit characters. All adapters run descriptions through this so
// output rows stay uniform.
func snippet(content string) string {
	plain := strings.TrimSpace(htmlTagRegex.ReplaceAllString(content, " "))
	runes := []rune(plain)
	if len(runes) > snippetLimit {
		return string(runes[:snippetLimit])
	}
	return plain
}

// orSlug returns name unless it is blank, in which case the board slug
// stands in as the company label.
func orSlug(name, slug string) string {
	if strings.TrimSpace(name) == "" {
		return slug
	}
	return name
}
