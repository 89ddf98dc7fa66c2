package model

import (
	"strings"

	"github.com/rivo/uniseg"
)

// MaxThreadNameBytes is the Discord limit for thread names
const MaxThreadNameBytes = 100

const threadNameSeparator = " | "

// BuildThreadName combines an author display name and a message body into
// a thread title of the form "name | body", truncated to at most 100
// bytes. Truncation happens at extended grapheme cluster boundaries
// (UAX#29), never inside a codepoint or a user-visible character, so the
// result is valid text in any script.
func BuildThreadName(authorName, body string) string {
	var b strings.Builder
	byteCount := 0

	for _, part := range []string{authorName, threadNameSeparator, body} {
		g := uniseg.NewGraphemes(part)
		for g.Next() {
			cluster := g.Str()
			if byteCount+len(cluster) > MaxThreadNameBytes {
				return b.String()
			}
			byteCount += len(cluster)
			b.WriteString(cluster)
		}
	}

	return b.String()
}
