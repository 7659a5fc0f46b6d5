// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: hyperlink/rule.go
// Summary: Implicit hyperlink rules matched against rendered output text.
// Usage: The hosting terminal compiles rules once and scans visible lines.

package hyperlink

import (
	"fmt"
	"strings"

	"github.com/dlclark/regexp2"
)

// Rule turns text matching a pattern into an implicit hyperlink. The
// format string builds the URI from the match; $0 is the whole match and
// $1..$9 refer to capture groups, so a rule can prepend a scheme:
//
//	NewRule(`\b\w+@[\w-]+(\.[\w-]+)+\b`, "mailto:$0")
type Rule struct {
	re     *regexp2.Regexp
	format string
}

// NewRule compiles a matching rule.
func NewRule(pattern, format string) (*Rule, error) {
	re, err := regexp2.Compile(pattern, regexp2.None)
	if err != nil {
		return nil, fmt.Errorf("hyperlink: compile rule %q: %w", pattern, err)
	}
	return &Rule{re: re, format: format}, nil
}

// Match is one implicit link found in a line of text. Start and End are
// byte offsets into the scanned line.
type Match struct {
	Start int
	End   int
	Link  *Hyperlink
}

// FindMatches scans line with every rule in order and returns the spans
// found. Earlier rules win: a later rule cannot claim bytes already
// covered by a match.
func FindMatches(rules []*Rule, line string) []Match {
	var out []Match
	runes := []rune(line)
	for _, rule := range rules {
		m, err := rule.re.FindRunesMatch(runes)
		for err == nil && m != nil {
			start := byteOffset(runes, m.Index)
			end := byteOffset(runes, m.Index+m.Length)
			if !overlaps(out, start, end) {
				out = append(out, Match{
					Start: start,
					End:   end,
					Link:  NewImplicit(rule.expand(m)),
				})
			}
			m, err = rule.re.FindNextMatch(m)
		}
	}
	return out
}

func (r *Rule) expand(m *regexp2.Match) string {
	var b strings.Builder
	f := r.format
	for i := 0; i < len(f); i++ {
		if f[i] == '$' && i+1 < len(f) && f[i+1] >= '0' && f[i+1] <= '9' {
			n := int(f[i+1] - '0')
			if g := m.GroupByNumber(n); g != nil {
				b.WriteString(g.String())
			}
			i++
			continue
		}
		b.WriteByte(f[i])
	}
	return b.String()
}

func byteOffset(runes []rune, runeIdx int) int {
	n := 0
	for _, r := range runes[:runeIdx] {
		n += len(string(r))
	}
	return n
}

func overlaps(matches []Match, start, end int) bool {
	for _, m := range matches {
		if start < m.End && end > m.Start {
			return true
		}
	}
	return false
}
