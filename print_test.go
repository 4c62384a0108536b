package pamflet

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muesli/reflow/ansi"
)

func TestFprintBoring(t *testing.T) {
	src := "Pick one\n.color: red\n- a\n- b\n.correct: 1\n.explanation: why\n" +
		"- x\n- y\n- z\n.correct: 0,2\n" +
		"- plain\n" +
		"Lnk \"https://x.io\" Read more\nLnk https://y.io\n" +
		"Img \"a.png\" alt text\nAud \"b.mp3\""
	elements := parseSeq(t, src)

	var out bytes.Buffer
	if err := Fprint(&out, elements, PrintConfig{Theme: BoringTheme()}); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	want := strings.Join([]string{
		"[text] id=00000000000000000001 color=red fontSize=1.2rem textAlign=center",
		"  Pick one",
		"[single_select] id=00000000000000000002 fontSize=1.2rem correct=1",
		"  [ ] 0. a",
		"  [x] 1. b",
		"  explanation: why",
		"[multi_select] id=00000000000000000003 fontSize=1.2rem correct=0,2",
		"  [x] 0. x",
		"  [ ] 1. y",
		"  [x] 2. z",
		"[list] id=00000000000000000004 fontSize=1.2rem",
		"  - plain",
		"[link] id=00000000000000000005 fontSize=1.2rem",
		"  Read more (https://x.io)",
		"[link] id=00000000000000000006 fontSize=1.2rem",
		"  https://y.io",
		"[image] id=00000000000000000007",
		"  src: a.png",
		"  alt: alt text",
		"[audio] id=00000000000000000008",
		"  src: b.mp3",
		"",
	}, "\n")
	if out.String() != want {
		t.Fatalf("unexpected listing:\n%s\nwant:\n%s", out.String(), want)
	}
}

func TestFprintUnansweredQuestion(t *testing.T) {
	var out bytes.Buffer
	if err := Fprint(&out, parseSeq(t, "- a\n.correct: 9"), PrintConfig{Theme: BoringTheme()}); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if !strings.Contains(out.String(), "correct=none") || !strings.Contains(out.String(), "[ ] 0. a") {
		t.Fatalf("unexpected listing:\n%s", out.String())
	}
}

func TestFprintWrapsToWidth(t *testing.T) {
	long := strings.Repeat("lorem ipsum dolor ", 12)
	elements := parseSeq(t, long+"\n- "+long)
	var out bytes.Buffer
	if err := Fprint(&out, elements, PrintConfig{Width: 40, Theme: BoringTheme()}); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	for _, line := range lines {
		if strings.HasPrefix(line, "[") {
			continue
		}
		if w := ansi.PrintableRuneWidth(line); w > 40 {
			t.Fatalf("line exceeds width (%d): %q", w, line)
		}
	}
	if !strings.Contains(out.String(), "\n    lorem") {
		t.Fatalf("expected list continuation lines aligned after the marker:\n%s", out.String())
	}
}

func TestFprintStyledAndOSC8(t *testing.T) {
	elements := parseSeq(t, `Lnk "https://x.io" docs`)
	var out bytes.Buffer
	if err := Fprint(&out, elements, PrintConfig{OSC8: true}); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	if !strings.Contains(out.String(), "\x1b[") {
		t.Fatalf("default theme should emit ANSI styling: %q", out.String())
	}
	if !strings.Contains(out.String(), osc8Start+"https://x.io"+osc8Close) {
		t.Fatalf("expected an OSC 8 hyperlink: %q", out.String())
	}
}

func TestFprintOSC8WithWidth(t *testing.T) {
	href := "https://example.com/a/very/long/path/segment/that/keeps/going"
	caption := "some link caption words here and then some more"
	elements := parseSeq(t, `Lnk "`+href+`" `+caption)
	var out bytes.Buffer
	if err := Fprint(&out, elements, PrintConfig{Width: 40, Theme: BoringTheme(), OSC8: true}); err != nil {
		t.Fatalf("Fprint: %v", err)
	}
	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) < 3 {
		t.Fatalf("expected a header and wrapped body lines:\n%q", out.String())
	}
	var visible []string
	for _, line := range lines[1:] {
		body, ok := strings.CutPrefix(line, "  "+osc8Start+href+osc8Close)
		if !ok || !strings.HasSuffix(body, osc8End) {
			t.Fatalf("line is not one whole hyperlink: %q", line)
		}
		visible = append(visible, strings.TrimSuffix(body, osc8End))
	}
	if got, want := strings.Join(visible, " "), caption+" ("+href+")"; got != want {
		t.Fatalf("unexpected visible text %q, want %q", got, want)
	}
}

func TestFitURL(t *testing.T) {
	long := "https://example.com/a/rather/long/path/to/somewhere"
	if got := fitURL(long, 0); got != long {
		t.Fatalf("limit 0 should keep the url, got %q", got)
	}
	if got := fitURL("https://x.io/abc", 12); got != "x.io/abc" {
		t.Fatalf("expected the scheme dropped, got %q", got)
	}
	got := fitURL(long, 20)
	if w := ansi.PrintableRuneWidth(got); w > 20 || !strings.HasSuffix(got, "…") {
		t.Fatalf("expected a truncated url of at most 20 columns, got %q (%d)", got, w)
	}
}

func TestDetectOSC8Support(t *testing.T) {
	for _, key := range []string{"OSC8", "DOMTERM", "WT_SESSION", "TERM_PROGRAM", "VTE_VERSION"} {
		t.Setenv(key, "")
	}
	t.Setenv("TERM", "xterm-256color")
	if DetectOSC8Support() {
		t.Fatalf("plain xterm should not report OSC 8 support")
	}
	t.Setenv("TERM_PROGRAM", "WezTerm")
	if !DetectOSC8Support() {
		t.Fatalf("WezTerm should report OSC 8 support")
	}
	t.Setenv("OSC8", "0")
	if DetectOSC8Support() {
		t.Fatalf("OSC8=0 should disable support")
	}
	t.Setenv("OSC8", "")
	t.Setenv("TERM", "dumb")
	if DetectOSC8Support() {
		t.Fatalf("dumb terminals do not support OSC 8")
	}
	t.Setenv("TERM", "xterm-kitty")
	t.Setenv("TERM_PROGRAM", "")
	if !DetectOSC8Support() {
		t.Fatalf("kitty should report OSC 8 support")
	}
}
