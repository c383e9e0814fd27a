package classify

import (
	"math"
	"testing"
)

func TestIsPrivate_ExplicitIndicators(t *testing.T) {
	c := New()

	private := []string{
		"This is strictly confidential material.",
		"I shouldn't tell you about the plan.",
		"Between us, the rollout was a mess.",
		"Please keep this to yourself.",
		"An inner monologue about the outage.",
		"Nobody should know about the workaround.",
		"If I'm being honest, the design has problems.",
		"I wouldn't admit this publicly, but the test suite is thin.",
	}
	for _, s := range private {
		if !c.IsPrivate(s) {
			t.Errorf("expected private: %q", s)
		}
	}
}

func TestIsPrivate_NeutralText(t *testing.T) {
	c := New()

	public := []string{
		"The sky is blue. Water is wet.",
		"The library opens at nine on weekdays.",
		"Compile the program and run the binary.",
	}
	for _, s := range public {
		if c.IsPrivate(s) {
			t.Errorf("expected public: %q", s)
		}
	}
}

func TestIsPrivate_CaseInsensitive(t *testing.T) {
	c := New()
	if !c.IsPrivate("KEEP THIS TO YOURSELF.") {
		t.Error("indicator match should be case-insensitive")
	}
}

func TestIntrospectionScore(t *testing.T) {
	tests := []struct {
		name string
		text string
		want float64
	}{
		{"empty", "", 0.0},
		{"whitespace", "   ", 0.0},
		// 3 words, 3 hits (I, think, maybe): 3/(3*0.3) caps at 1.0
		{"dense introspection", "I think maybe", 1.0},
		{"no signals", "Trains depart hourly from platform nine", 0.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := IntrospectionScore(tt.text)
			if math.Abs(got-tt.want) > 0.001 {
				t.Errorf("IntrospectionScore(%q) = %f, want %f", tt.text, got, tt.want)
			}
		})
	}
}

func TestIsPrivate_IntrospectiveSegment(t *testing.T) {
	c := New()
	// Heavy first-person plus cognition verbs, no explicit indicator.
	text := "I wonder whether I believe my own answer, and I doubt myself."
	if score := IntrospectionScore(text); score <= IntrospectionThreshold {
		t.Fatalf("test text should score above threshold, got %f", score)
	}
	if !c.IsPrivate(text) {
		t.Error("introspective segment should classify private")
	}
}

func TestSensitivityScore_CautionWeighting(t *testing.T) {
	// 7 words, 1 caution phrase: 2/(7*0.25) caps at 1.0
	text := "Careful now, the stove top stays hot"
	got := SensitivityScore(text)
	if math.Abs(got-1.0) > 0.001 {
		t.Errorf("expected caution phrase weighted double, got %f", got)
	}
}

// A score exactly equal to the threshold must not classify private; only
// strictly greater triggers.
func TestIsPrivate_SensitivityBoundary(t *testing.T) {
	c := New()
	// 10 words, 2 topic hits, no cautions: 2/(10*0.25) = 0.8 exactly.
	text := "The committee debated the controversial zoning dispute at open session"
	if got := SensitivityScore(text); got != SensitivityThreshold {
		t.Fatalf("expected score exactly %v, got %v", SensitivityThreshold, got)
	}
	if IntrospectionScore(text) > IntrospectionThreshold {
		t.Fatal("test text should not trip the introspection signal")
	}
	if c.IsPrivate(text) {
		t.Error("score equal to threshold must not classify private")
	}
}

func TestScores_EmptySegment(t *testing.T) {
	if IntrospectionScore("") != 0.0 || SensitivityScore("") != 0.0 {
		t.Error("empty segment must score 0.0")
	}
	if New().IsPrivate("") {
		t.Error("empty segment must classify public")
	}
}
