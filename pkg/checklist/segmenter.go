package checklist

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// SegmenterOptions control optional segmentation behavior.
type SegmenterOptions struct {
	// BulletAware strips leading bullet markers (-, *, •) at line starts so
	// bulleted lines become their own segments.
	BulletAware bool

	// SplitConjunctions performs a secondary split on the literal
	// conjunction " and " within each clause.
	SplitConjunctions bool
}

// Clause and sentence terminators, covering Latin and CJK punctuation.
// Line breaks are segment boundaries as well.
const segmentTerminators = ".;!?。；、\n\r"

// Characters trimmed from both ends of a candidate segment.
const segmentTrimCutset = " \t -–—"

// Segment splits raw text into an ordered sequence of non-empty clause-level
// segments. Empty or whitespace-only input yields an empty sequence. The
// function is pure and deterministic.
func Segment(text string, opts SegmenterOptions) []string {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	// Normalize to NFC first so composed and decomposed inputs segment the
	// same way.
	text = norm.NFC.String(text)

	if opts.BulletAware {
		text = stripBulletMarkers(text)
	}

	clauses := strings.FieldsFunc(text, func(r rune) bool {
		return strings.ContainsRune(segmentTerminators, r)
	})

	segments := make([]string, 0, len(clauses))
	for _, clause := range clauses {
		// Collapse consecutive whitespace to single spaces.
		clause = strings.Join(strings.Fields(clause), " ")

		candidates := []string{clause}
		if opts.SplitConjunctions {
			candidates = strings.Split(clause, " and ")
		}

		for _, candidate := range candidates {
			candidate = strings.Trim(candidate, segmentTrimCutset)
			if candidate == "" {
				continue
			}
			segments = append(segments, candidate)
		}
	}

	return segments
}

// stripBulletMarkers removes a single leading bullet marker from each line.
func stripBulletMarkers(text string) string {
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		for _, marker := range []string{"- ", "* ", "• ", "-", "*", "•"} {
			if strings.HasPrefix(trimmed, marker) {
				trimmed = strings.TrimPrefix(trimmed, marker)
				break
			}
		}
		lines[i] = trimmed
	}
	return strings.Join(lines, "\n")
}
