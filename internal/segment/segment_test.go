package segment

import (
	"strings"
	"testing"
)

func TestSplit_EmptyInput(t *testing.T) {
	if got := Split(""); got != nil {
		t.Errorf("expected nil, got %v", got)
	}
	if got := Split("\n\n  \n\n"); got != nil {
		t.Errorf("expected nil for whitespace-only input, got %v", got)
	}
}

func TestSplit_SingleParagraph(t *testing.T) {
	text := "  The quick brown fox.  "
	got := Split(text)
	if len(got) != 1 {
		t.Fatalf("expected 1 segment, got %d", len(got))
	}
	if got[0] != "The quick brown fox." {
		t.Errorf("expected trimmed paragraph, got %q", got[0])
	}
}

func TestSplit_ParagraphBoundaries(t *testing.T) {
	text := "First paragraph.\n\nSecond paragraph.\n   \nThird paragraph."
	got := Split(text)
	if len(got) != 3 {
		t.Fatalf("expected 3 segments, got %d: %v", len(got), got)
	}
	want := []string{"First paragraph.", "Second paragraph.", "Third paragraph."}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("segment %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestSplit_LongParagraphSentences(t *testing.T) {
	sentence := "This sentence pads the paragraph out toward the split limit. "
	text := strings.Repeat(sentence, 12) // well over MaxParagraphLen

	got := Split(text)
	if len(got) != 12 {
		t.Fatalf("expected 12 sentence segments, got %d", len(got))
	}
	for i, s := range got {
		if s != strings.TrimSpace(sentence) {
			t.Errorf("segment %d: got %q", i, s)
		}
	}
}

func TestSplit_ShortParagraphNotSentenceSplit(t *testing.T) {
	text := "One sentence. Another sentence. A third."
	got := Split(text)
	if len(got) != 1 {
		t.Fatalf("short paragraph should stay whole, got %d segments", len(got))
	}
}

func TestSplit_PreservesOrder(t *testing.T) {
	text := "alpha\n\nbravo\n\ncharlie"
	got := Split(text)
	if strings.Join(got, " ") != "alpha bravo charlie" {
		t.Errorf("order not preserved: %v", got)
	}
}

// Joining segments and stripping whitespace must reconstruct the source
// text's non-whitespace content exactly.
func TestSplit_Reconstruction(t *testing.T) {
	texts := []string{
		"Hello there.\n\nI think I shouldn't tell you this secretly.",
		strings.Repeat("A padded sentence for the long case! ", 20),
		"No trailing punctuation here\n\nand neither here",
	}
	strip := func(s string) string {
		return strings.Join(strings.Fields(s), "")
	}
	for _, text := range texts {
		got := Split(text)
		if strip(strings.Join(got, "")) != strip(text) {
			t.Errorf("reconstruction mismatch for %q: %v", text, got)
		}
	}
}
