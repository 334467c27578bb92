// Package sanitize cleans untrusted input before it reaches the emotion
// pipeline: free text typed by users or passed through MCP tools, emotion and
// keyword names, and file paths given on the command line.
package sanitize

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// MaxTextLength is the maximum number of runes of text analyzed per request.
const MaxTextLength = 2000

// MaxTermLength is the maximum length of an emotion or keyword name.
const MaxTermLength = 64

// Pre-compiled regular expressions for performance.
var (
	// reXMLTag matches XML/HTML tags including those with attributes and self-closing tags.
	// It also matches XML processing instructions like <?xml ...?>.
	reXMLTag = regexp.MustCompile(`<[/?!]?[a-zA-Z][a-zA-Z0-9]*(?:\s+[^>]*)?/?\s*>|<\?[^?]*\?>|</\s+[a-zA-Z][^>]*>|<[/?!]?[a-zA-Z][^>]*$`)

	// reHTMLComment matches HTML comments like <!-- anything -->.
	reHTMLComment = regexp.MustCompile(`<!--[\s\S]*?-->`)

	// reCDATA matches CDATA sections like <![CDATA[anything]]>.
	reCDATA = regexp.MustCompile(`<!\[CDATA\[[\s\S]*?\]\]>`)

	// reRepeatedHyphens matches 2 or more consecutive hyphens.
	reRepeatedHyphens = regexp.MustCompile(`-{2,}`)
)

// Text sanitizes free text before analysis. Markup is dropped, since tag
// names would otherwise be scored as words.
//
// The pipeline runs in this order:
//  1. Strip null bytes and ASCII control characters (except \n, \t)
//  2. Strip HTML comments, CDATA sections and XML/HTML tags
//  3. Trim leading/trailing whitespace
//  4. Truncate to MaxTextLength runes
//
// Case, punctuation and repeated letters are left alone: they carry
// intensity.
func Text(input string) string {
	if input == "" {
		return ""
	}

	s := stripControlChars(input)

	s = reHTMLComment.ReplaceAllString(s, "")
	s = reCDATA.ReplaceAllString(s, "")
	s = reXMLTag.ReplaceAllString(s, "")

	s = strings.TrimSpace(s)

	if utf8.RuneCountInString(s) > MaxTextLength {
		runes := []rune(s)
		s = string(runes[:MaxTextLength])
	}

	return s
}

// Term normalizes an emotion or keyword name: lowercased, keeping only
// letters, digits, apostrophes, hyphens and underscores, with repeated
// hyphens collapsed and the result capped at MaxTermLength runes.
func Term(input string) string {
	if input == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(input))
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '\'' || r == '-' || r == '_' {
			b.WriteRune(r)
		}
	}
	s := reRepeatedHyphens.ReplaceAllString(b.String(), "-")

	if utf8.RuneCountInString(s) > MaxTermLength {
		runes := []rune(s)
		s = string(runes[:MaxTermLength])
	}

	return s
}

// FilePath sanitizes a file path by cleaning path traversal sequences and
// stripping control characters. Used for lexicon and config paths.
func FilePath(input string) string {
	if input == "" {
		return ""
	}
	s := stripControlChars(input)
	s = filepath.Clean(s)
	return s
}

// stripControlChars removes ASCII control characters (0x00-0x1F) and DEL (0x7F) from
// the string, except for newline (0x0A) and tab (0x09) which are preserved.
func stripControlChars(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if (r < 0x20 || r == 0x7F) && r != '\n' && r != '\t' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
