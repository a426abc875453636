package sanitize_test

import (
	"strings"
	"testing"

	"github.com/njchilds90/handy/sanitize"
)

func TestStripEvents_BlankInputUnchanged(t *testing.T) {
	for _, in := range []string{"", "   ", "\t\n "} {
		if got := sanitize.StripEvents(in); got != in {
			t.Errorf("StripEvents(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestStripEvents_RemovesHandlerKeepsTag(t *testing.T) {
	got := sanitize.StripEvents(`<div onclick='x()'>Click</div>`)
	if got != `<div>Click</div>` {
		t.Errorf("StripEvents = %q, want %q", got, `<div>Click</div>`)
	}
}

func TestStripEvents_MultipleHandlersOneTag(t *testing.T) {
	in := `<img onmouseover="a()" onclick="b()" src="x.png">`
	got := sanitize.StripEvents(in)
	if got != `<img src="x.png">` {
		t.Errorf("StripEvents = %q, want %q", got, `<img src="x.png">`)
	}
}

func TestStripEvents_CaseInsensitive(t *testing.T) {
	got := sanitize.StripEvents(`<div ONCLICK="x()">hi</div>`)
	if strings.Contains(strings.ToLower(got), "onclick") {
		t.Errorf("uppercase handler survived: %q", got)
	}
}

func TestStripEvents_NoHandlersUnchanged(t *testing.T) {
	in := `<a href="/about" title="about">About</a> plain text`
	if got := sanitize.StripEvents(in); got != in {
		t.Errorf("StripEvents = %q, want input unchanged", got)
	}
}

func TestStripEvents_Idempotent(t *testing.T) {
	inputs := []string{
		`<div onclick='a()' onblur='b()'>x</div>`,
		`<p>no handlers</p>`,
		`text with a lone < bracket`,
	}
	for _, in := range inputs {
		once := sanitize.StripEvents(in)
		twice := sanitize.StripEvents(once)
		if once != twice {
			t.Errorf("StripEvents not idempotent on %q: %q then %q", in, once, twice)
		}
	}
}

func TestStripTags_All(t *testing.T) {
	got := sanitize.StripTags(`<p>Hello <b>World</b>!</p>`)
	if got != "Hello World!" {
		t.Errorf("StripTags = %q, want %q", got, "Hello World!")
	}
}

func TestStripTags_BlankInputUnchanged(t *testing.T) {
	for _, in := range []string{"", "  ", "\n"} {
		if got := sanitize.StripTags(in); got != in {
			t.Errorf("StripTags(%q) = %q, want input unchanged", in, got)
		}
		if got := sanitize.StripTags(in, "<b"); got != in {
			t.Errorf("StripTags(%q, <b) = %q, want input unchanged", in, got)
		}
	}
}

func TestStripTags_NoMarkupUnchanged(t *testing.T) {
	in := "2 < 3 and plain text"
	if got := sanitize.StripTags(in); got != in {
		t.Errorf("StripTags = %q, want input unchanged", got)
	}
}

func TestStripTags_Idempotent(t *testing.T) {
	once := sanitize.StripTags(`<p>Hello <b>World</b>!</p>`)
	twice := sanitize.StripTags(once)
	if once != twice {
		t.Errorf("StripTags not idempotent: %q then %q", once, twice)
	}
}

func TestStripTags_AllowlistKeepsTag(t *testing.T) {
	got := sanitize.StripTags(`<p>Hello <b>World</b> <script>alert(1)</script></p>`, "<b")
	if got != `Hello <b>World</b> ` {
		t.Errorf("StripTags = %q, want %q", got, `Hello <b>World</b> `)
	}
}

func TestStripTags_AllowlistExcludesOthers(t *testing.T) {
	got := sanitize.StripTags(`<i>x</i> <b>y</b>`, "<b")
	if strings.Contains(got, "<i>") || strings.Contains(got, "</i>") {
		t.Errorf("<i> should be removed: %q", got)
	}
	if !strings.Contains(got, "<b>y</b>") {
		t.Errorf("<b> should survive: %q", got)
	}
}

func TestStripTags_TrailingBracketEntryEquivalent(t *testing.T) {
	in := `<p>Hello <b>World</b></p>`
	if a, b := sanitize.StripTags(in, "<b"), sanitize.StripTags(in, "<b>"); a != b {
		t.Errorf("entry <b gave %q but <b> gave %q", a, b)
	}
}

func TestStripTags_EmptyAllowlistStripsAll(t *testing.T) {
	in := `<p>Hello <b>World</b></p>`
	want := sanitize.StripTags(in)
	for _, entries := range [][]string{nil, {}, {""}, {"  "}, {">"}} {
		if got := sanitize.StripTags(in, entries...); got != want {
			t.Errorf("StripTags(%q, %q) = %q, want %q", in, entries, got, want)
		}
	}
}

func TestStripTags_AllowlistCaseInsensitive(t *testing.T) {
	got := sanitize.StripTags(`<B>bold</B>`, "<b")
	if got != `<B>bold</B>` {
		t.Errorf("uppercase tag should survive lowercase entry: %q", got)
	}
}

func TestStripTags_AllowlistStripsEvents(t *testing.T) {
	got := sanitize.StripTags(`<div onclick='a()'><b>ok</b><script>bad()</script></div>`, "<div", "<b")
	if got != `<div><b>ok</b></div>` {
		t.Errorf("StripTags = %q, want %q", got, `<div><b>ok</b></div>`)
	}
}

func TestStripTags_ScriptContentRemoved(t *testing.T) {
	got := sanitize.StripTags(`before<script type="text/javascript">var x = 1;</script>after`, "<b")
	if got != "beforeafter" {
		t.Errorf("script block should go with its contents: %q", got)
	}
}

func TestStripTags_AllowedScriptSurvives(t *testing.T) {
	in := `<script>x()</script>`
	if got := sanitize.StripTags(in, "<script"); got != in {
		t.Errorf("allowlisted script should survive: %q", got)
	}
}

func TestStripTagsList_EquivalentToSlice(t *testing.T) {
	in := `<a href="/x">link</a> <b>bold</b> <i>italic</i>`
	joined := sanitize.StripTagsList(in, "<a;<b")
	sliced := sanitize.StripTags(in, "<a", "<b")
	if joined != sliced {
		t.Errorf("joined form %q != slice form %q", joined, sliced)
	}
}

func TestStripTagsList_BlankListStripsAll(t *testing.T) {
	in := `<p>Hello <b>World</b></p>`
	for _, list := range []string{"", "   "} {
		if got := sanitize.StripTagsList(in, list); got != "Hello World" {
			t.Errorf("StripTagsList(%q, %q) = %q, want %q", in, list, got, "Hello World")
		}
	}
}

func TestIsBlank(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"", true},
		{"   ", true},
		{"\t\r\n", true},
		{"x", false},
		{"  x  ", false},
	}
	for _, tt := range tests {
		if got := sanitize.IsBlank(tt.in); got != tt.want {
			t.Errorf("IsBlank(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func BenchmarkStripTags(b *testing.B) {
	input := strings.Repeat(`<p onclick='x()'>Hello <b>world</b> <script>bad()</script></p>`, 100)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sanitize.StripTags(input, "<b", "<p")
	}
}
