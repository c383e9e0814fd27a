// Package classify decides whether a text segment reads as a private
// thought, using explicit privacy indicators plus lexical scoring.
package classify

import (
	"regexp"
	"strings"
)

// Scoring tunables. Comparisons are strictly greater-than: a score equal to
// the threshold does not mark a segment private.
const (
	IntrospectionThreshold = 0.7
	SensitivityThreshold   = 0.8
	IntrospectionScale     = 0.3
	SensitivityScale       = 0.25
	CautionWeight          = 2
)

// privacyIndicators are phrasings that signal the text was not meant to be
// shared. Any single match marks the segment private.
var privacyIndicators = []string{
	`(?i)(private|secret|confidential|personal|sensitive)`,
	`(?i)(don't|do not|shouldn't|should not|wouldn't|would not)\s+(share|tell|reveal|disclose)`,
	`(?i)(between|just|only)\s+(us|ourselves|me and you)`,
	`(?i)keep\s+this\s+(to\s+yourself|private|secret|confidential)`,
	`(?i)(internal|introspective|inner)\s+(thought|reflection|monologue|dialogue)`,
	`(?i)(nobody|no one)\s+should\s+(know|hear|see|read)`,
	`(?i)if\s+I'm\s+being\s+honest`,
	`(?i)I\s+(wouldn't|won't|can't|cannot|don't)\s+(say|admit|acknowledge)\s+this\s+(publicly|openly)`,
}

var (
	firstPerson   = regexp.MustCompile(`(?i)\b(I|me|my|mine|myself)\b`)
	cognitionVerb = regexp.MustCompile(`(?i)\b(think|feel|believe|wonder|question|doubt|reflect)\b`)
	uncertainty   = regexp.MustCompile(`(?i)\b(maybe|perhaps|possibly|might|could be|uncertain|unsure)\b`)

	sensitiveTopics = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(controversial|controversy|contentious|dispute|disagreement)\b`),
		regexp.MustCompile(`(?i)\b(personal|private|intimate|secret)\b`),
		regexp.MustCompile(`(?i)\b(worry|concern|afraid|fear|anxious|anxiety)\b`),
		regexp.MustCompile(`(?i)\b(critique|criticism|critical|flaw|weakness|shortcoming)\b`),
	}
	cautionPhrase = regexp.MustCompile(`(?i)\b(careful|cautious|warning|between us|not for|hesitant)\b`)
)

// Classifier holds the compiled privacy-indicator patterns.
type Classifier struct {
	indicators []*regexp.Regexp
}

// New compiles the indicator patterns.
func New() *Classifier {
	c := &Classifier{}
	for _, p := range privacyIndicators {
		c.indicators = append(c.indicators, regexp.MustCompile(p))
	}
	return c
}

// IsPrivate reports whether a segment should be withheld from public output.
// Checks short-circuit in order: explicit indicators, introspection score,
// sensitivity score.
func (c *Classifier) IsPrivate(text string) bool {
	for _, re := range c.indicators {
		if re.MatchString(text) {
			return true
		}
	}

	if IntrospectionScore(text) > IntrospectionThreshold {
		return true
	}

	return SensitivityScore(text) > SensitivityThreshold
}

// IntrospectionScore measures how self-reflective a segment is, from counts
// of first-person pronouns, cognition verbs and uncertainty words, normalized
// by word count. Returns a value in [0, 1]; 0 for empty text.
func IntrospectionScore(text string) float64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0.0
	}

	hits := len(firstPerson.FindAllString(text, -1)) +
		len(cognitionVerb.FindAllString(text, -1)) +
		len(uncertainty.FindAllString(text, -1))

	return capped(float64(hits) / (float64(words) * IntrospectionScale))
}

// SensitivityScore measures how touchy a segment's subject matter is.
// Cautionary phrases weigh double. Returns a value in [0, 1]; 0 for empty
// text.
func SensitivityScore(text string) float64 {
	words := len(strings.Fields(text))
	if words == 0 {
		return 0.0
	}

	topics := 0
	for _, re := range sensitiveTopics {
		topics += len(re.FindAllString(text, -1))
	}
	cautions := len(cautionPhrase.FindAllString(text, -1))

	hits := topics + CautionWeight*cautions
	return capped(float64(hits) / (float64(words) * SensitivityScale))
}

func capped(score float64) float64 {
	if score > 1.0 {
		return 1.0
	}
	return score
}
