// Package segment splits generated text into classifier-sized segments.
package segment

import (
	"regexp"
	"strings"
)

// MaxParagraphLen is the trimmed length above which a paragraph is further
// split into sentences.
const MaxParagraphLen = 500

var (
	paragraphBreak = regexp.MustCompile(`\n\s*\n`)
	sentenceEnd    = regexp.MustCompile(`[.!?]\s+`)
)

// Split breaks text into ordered segments: paragraphs on blank-line
// boundaries, with paragraphs longer than MaxParagraphLen split again on
// sentence-ending punctuation. Segments are trimmed; empty pieces are
// dropped. Order matches the source text.
func Split(text string) []string {
	paragraphs := paragraphBreak.Split(text, -1)

	var segments []string
	for _, p := range paragraphs {
		if len(strings.TrimSpace(p)) > MaxParagraphLen {
			segments = append(segments, splitSentences(p)...)
		} else {
			segments = append(segments, p)
		}
	}

	result := segments[:0]
	for _, s := range segments {
		s = strings.TrimSpace(s)
		if s != "" {
			result = append(result, s)
		}
	}
	if len(result) == 0 {
		return nil
	}
	return result
}

// splitSentences cuts text after each sentence-ending punctuation mark that
// is followed by whitespace, keeping the punctuation with the left piece.
func splitSentences(text string) []string {
	locs := sentenceEnd.FindAllStringIndex(text, -1)
	if locs == nil {
		return []string{text}
	}

	var pieces []string
	start := 0
	for _, loc := range locs {
		// loc[0] is the punctuation mark; cut just after it.
		pieces = append(pieces, text[start:loc[0]+1])
		start = loc[1]
	}
	if start < len(text) {
		pieces = append(pieces, text[start:])
	}
	return pieces
}
