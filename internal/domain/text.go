package domain

import (
	"path"
	"regexp"
	"strings"
)

// Tokenizer splits text into lowercase terms.
// A Tokenizer is immutable after construction and safe to share.
type Tokenizer struct {
	pattern *regexp.Regexp
}

// NewTokenizer compiles the term pattern: runs of ASCII letters, digits, '_' and '-'
func NewTokenizer() *Tokenizer {
	return &Tokenizer{pattern: regexp.MustCompile(`[A-Za-z0-9_-]+`)}
}

// Counts returns how often each term occurs in text
func (t *Tokenizer) Counts(text string) map[string]int {
	counts := make(map[string]int)
	for _, tok := range t.pattern.FindAllString(text, -1) {
		counts[strings.ToLower(tok)]++
	}
	return counts
}

// Tokens returns the distinct terms in text
func (t *Tokenizer) Tokens(text string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, tok := range t.pattern.FindAllString(text, -1) {
		set[strings.ToLower(tok)] = struct{}{}
	}
	return set
}

// LinkParser extracts wiki link targets ([[target#heading|alias]]) from note content.
// A LinkParser is immutable after construction and safe to share.
type LinkParser struct {
	pattern *regexp.Regexp
}

// NewLinkParser compiles the wiki link pattern
func NewLinkParser() *LinkParser {
	return &LinkParser{
		pattern: regexp.MustCompile(`\[\[([^\]|#]+)(?:#[^\]|]+)?(?:\|[^\]]+)?\]\]`),
	}
}

// Targets returns the trimmed raw targets of every link in content, in document order.
// Heading fragments and aliases are dropped. Blank targets are skipped.
func (p *LinkParser) Targets(content string) []string {
	var targets []string
	for _, m := range p.pattern.FindAllStringSubmatch(content, -1) {
		raw := strings.TrimSpace(m[1])
		if raw == "" {
			continue
		}
		targets = append(targets, raw)
	}
	return targets
}

// ResolutionKey returns the lowercase filename component of a raw link target.
// Directory components are discarded: "Projects/Alpha" resolves as "alpha".
func ResolutionKey(raw string) string {
	return strings.ToLower(path.Base(raw))
}

// TitleFromContent returns the text of the first "# " heading line, or fallback
func TitleFromContent(content, fallback string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if rest, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(rest)
		}
	}
	return fallback
}
