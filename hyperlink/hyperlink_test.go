package hyperlink

import "testing"

func TestEqual(t *testing.T) {
	a := New("https://example.com", "doc1")
	b := New("https://example.com", "doc1")
	c := New("https://example.com", "doc2")
	d := NewImplicit("https://example.com")

	if !a.Equal(b) {
		t.Error("links with identical uri and id must compare equal")
	}
	if a.Equal(c) {
		t.Error("links with differing ids must not compare equal")
	}
	if a.Equal(d) {
		t.Error("explicit and implicit links must not compare equal")
	}
	var nilLink *Hyperlink
	if a.Equal(nilLink) {
		t.Error("non-nil link must not equal nil")
	}
	if !nilLink.Equal(nil) {
		t.Error("nil links compare equal")
	}
}

func TestSharedIdentity(t *testing.T) {
	link := New("https://example.com", "")
	ref := link
	if ref != link {
		t.Fatal("hyperlinks are shared by pointer")
	}
	if link.IsImplicit() {
		t.Error("New produces explicit links")
	}
	if !NewImplicit("x").IsImplicit() {
		t.Error("NewImplicit produces implicit links")
	}
}

func TestRuleMatching(t *testing.T) {
	urlRule, err := NewRule(`\bhttps?://\S+\b`, "$0")
	if err != nil {
		t.Fatalf("compile url rule: %v", err)
	}
	mailRule, err := NewRule(`\b\w+@[\w-]+(\.[\w-]+)+\b`, "mailto:$0")
	if err != nil {
		t.Fatalf("compile mail rule: %v", err)
	}
	rules := []*Rule{urlRule, mailRule}

	line := "see https://example.com/docs or write to marc@example.org today"
	matches := FindMatches(rules, line)
	if len(matches) != 2 {
		t.Fatalf("got %d matches, want 2: %v", len(matches), matches)
	}
	if got := matches[0].Link.URI(); got != "https://example.com/docs" {
		t.Errorf("first match uri = %q", got)
	}
	if got := line[matches[0].Start:matches[0].End]; got != "https://example.com/docs" {
		t.Errorf("first match span = %q", got)
	}
	if got := matches[1].Link.URI(); got != "mailto:marc@example.org" {
		t.Errorf("second match uri = %q", got)
	}
	if got := line[matches[1].Start:matches[1].End]; got != "marc@example.org" {
		t.Errorf("second match span = %q", got)
	}
	for _, m := range matches {
		if !m.Link.IsImplicit() {
			t.Error("rule matches must synthesize implicit links")
		}
	}
}

func TestRuleNoOverlap(t *testing.T) {
	first, err := NewRule(`https?://\S+`, "$0")
	if err != nil {
		t.Fatal(err)
	}
	second, err := NewRule(`example\.com`, "https://$0")
	if err != nil {
		t.Fatal(err)
	}
	matches := FindMatches([]*Rule{first, second}, "https://example.com/x")
	if len(matches) != 1 {
		t.Fatalf("overlapping later rule must not add a match, got %v", matches)
	}
}

func TestRuleCompileError(t *testing.T) {
	if _, err := NewRule(`(unclosed`, "$0"); err == nil {
		t.Error("expected compile error for malformed pattern")
	}
}

func TestByteOffsetsWithMultibyteText(t *testing.T) {
	rule, err := NewRule(`https?://\S+`, "$0")
	if err != nil {
		t.Fatal(err)
	}
	line := "日本語 https://例え.jp/お test"
	matches := FindMatches([]*Rule{rule}, line)
	if len(matches) != 1 {
		t.Fatalf("got %d matches, want 1", len(matches))
	}
	if got := line[matches[0].Start:matches[0].End]; got != "https://例え.jp/お" {
		t.Errorf("span = %q, offsets are not byte-accurate", got)
	}
}
