// Package checklist converts free-form task text into a bounded, ordered
// checklist of execution steps.
//
// The pipeline is a pure synchronous function of (text, maxSteps): the
// segmenter splits normalized text into clause-level segments, the rule table
// maps segments to step templates (first match wins), and the generator
// enforces the step-count bounds by padding from a generic fallback pool or
// truncating to the requested maximum. Catalogs are read-only after process
// start, so concurrent generation needs no locking.
package checklist
