package html

import "testing"

func TestStripHTML_RemovesTags(t *testing.T) {
	got := StripHTML("<p>News about <b>Go</b></p>")

	if got != "News about Go" {
		t.Errorf("StripHTML() = %q, want %q", got, "News about Go")
	}
}

func TestStripHTML_DecodesEntities(t *testing.T) {
	got := StripHTML("Tips &amp; tricks &mdash; weekly")

	if got != "Tips & tricks — weekly" {
		t.Errorf("StripHTML() = %q, want entities decoded", got)
	}
}

func TestStripHTML_CollapsesWhitespace(t *testing.T) {
	got := StripHTML("<div>one</div>\n\n  <div>two</div>")

	if got != "one two" {
		t.Errorf("StripHTML() = %q, want %q", got, "one two")
	}
}

func TestStripHTML_RemovesScriptContent(t *testing.T) {
	got := StripHTML(`<script>alert("x")</script>safe`)

	if got != "safe" {
		t.Errorf("StripHTML() = %q, want script content dropped", got)
	}
}

func TestStripHTML_EmptyInput(t *testing.T) {
	if got := StripHTML(""); got != "" {
		t.Errorf("StripHTML(\"\") = %q, want empty", got)
	}
}

func TestStripHTML_PlainTextPassesThrough(t *testing.T) {
	if got := StripHTML("already plain"); got != "already plain" {
		t.Errorf("StripHTML() = %q, want unchanged", got)
	}
}
