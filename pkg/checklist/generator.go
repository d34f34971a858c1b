package checklist

import (
	"strconv"
	"strings"

	"github.com/XiaoConstantine/checklist-go/pkg/errors"
)

// Step-count bounds for any generated checklist.
const (
	MinSteps        = 3
	MaxSteps        = 12
	DefaultMaxSteps = 8
)

// snippetLimit bounds segment text embedded into parameterized step titles.
// Hard truncation, no ellipsis.
const snippetLimit = 48

// Step is a materialized, numbered checklist item. Steps exist only for the
// lifetime of one request.
type Step struct {
	ID        string   `json:"id"`
	Title     string   `json:"title"`
	Action    string   `json:"action"`
	Verify    string   `json:"verify"`
	Artifacts []string `json:"artifacts"`
}

// Options configure a Generator.
type Options struct {
	Segmenter SegmenterOptions

	// Parameterized synthesizes step text from the originating segment
	// instead of copying the template verbatim.
	Parameterized bool
}

// Generator turns task text into checklist steps using one locale catalog.
// It is stateless; a single Generator is safe for concurrent use.
type Generator struct {
	catalog *Catalog
	opts    Options
}

// NewGenerator creates a generator over the given catalog.
func NewGenerator(catalog *Catalog, opts Options) *Generator {
	return &Generator{catalog: catalog, opts: opts}
}

// Catalog returns the catalog the generator selects templates from.
func (g *Generator) Catalog() *Catalog {
	return g.catalog
}

// candidate pairs a selected template with the segment that selected it.
// Padding and wholesale-fallback candidates carry an empty segment.
type candidate struct {
	template Template
	segment  string
}

// Generate produces 3..maxSteps checklist steps for the given text. Empty or
// whitespace-only text returns an EmptyText error and no steps; for any other
// input the padding policy guarantees the minimum, so generation is total.
func (g *Generator) Generate(text string, maxSteps int) ([]Step, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errors.New(errors.EmptyText, "text must be non-empty")
	}

	if maxSteps < MinSteps {
		maxSteps = MinSteps
	}
	if maxSteps > MaxSteps {
		maxSteps = MaxSteps
	}

	segments := Segment(text, g.opts.Segmenter)

	// Rule-table pass, first match wins per segment, original order, stopping
	// once the requested maximum is reached.
	matched := make([]candidate, 0, len(segments))
	for _, segment := range segments {
		if len(matched) == maxSteps {
			break
		}
		if template, ok := g.catalog.Select(segment); ok {
			matched = append(matched, candidate{template: template, segment: segment})
		}
	}

	pool := g.catalog.fallback
	switch {
	case len(matched) == 0:
		// No rule matched anywhere: the whole pool, in catalog order.
		for _, template := range pool {
			if len(matched) == maxSteps {
				break
			}
			matched = append(matched, candidate{template: template})
		}
	case len(matched) < MinSteps:
		// Deterministic cyclic padding from the start of the pool.
		for i := 0; len(matched) < MinSteps; i++ {
			matched = append(matched, candidate{template: pool[i%len(pool)]})
		}
	}

	if len(matched) > maxSteps {
		matched = matched[:maxSteps]
	}

	steps := make([]Step, 0, len(matched))
	for i, c := range matched {
		steps = append(steps, g.materialize(strconv.Itoa(i+1), c))
	}
	return steps, nil
}

// materialize builds the final step record for one candidate.
func (g *Generator) materialize(id string, c candidate) Step {
	step := Step{
		ID:        id,
		Title:     c.template.Title,
		Action:    c.template.Action,
		Verify:    c.template.Verify,
		Artifacts: unionArtifacts(c.template.Artifacts, g.catalog.TriggeredArtifacts(c.segment)),
	}

	if g.opts.Parameterized && c.segment != "" {
		step.Title = "Execute: " + truncateRunes(c.segment, snippetLimit)
		step.Action = "Do the following: " + c.segment + "."
		step.Verify = "Confirm completion of: " + c.segment + "."
	}

	return step
}

// unionArtifacts merges artifact tags in first-seen order with
// de-duplication. The result is never nil.
func unionArtifacts(base, extra []string) []string {
	artifacts := make([]string, 0, len(base)+len(extra))
	seen := make(map[string]struct{}, len(base)+len(extra))
	for _, a := range append(append([]string{}, base...), extra...) {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		artifacts = append(artifacts, a)
	}
	return artifacts
}

// truncateRunes hard-truncates s to at most limit runes.
func truncateRunes(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit])
}
