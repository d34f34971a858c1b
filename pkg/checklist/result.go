package checklist

import (
	"fmt"

	"github.com/XiaoConstantine/checklist-go/pkg/errors"
)

// Result states reported in Meta.
const (
	StateSuccess = "success"
	StateFailure = "failure"
)

// Meta carries the machine-readable outcome of one invocation.
type Meta struct {
	State  string `json:"state"`
	Reason string `json:"reason,omitempty"`
}

// Result is the caller-facing output of one checklist request. Failures use
// the same shape as successes: an empty step list plus an explicit
// failure state and reason, never a transport-level error.
type Result struct {
	Type         string  `json:"type"`
	Audience     string  `json:"audience"`
	Context      *string `json:"context"`
	Steps        []Step  `json:"steps"`
	HumanSummary string  `json:"human_summary"`
	Meta         *Meta   `json:"meta,omitempty"`
}

// SuccessResult wraps generated steps into the caller-facing shape.
func SuccessResult(steps []Step, context *string) *Result {
	if steps == nil {
		steps = []Step{}
	}
	return &Result{
		Type:         "checklist",
		Audience:     "agent",
		Context:      context,
		Steps:        steps,
		HumanSummary: fmt.Sprintf("Generated %d checklist steps.", len(steps)),
		Meta:         &Meta{State: StateSuccess},
	}
}

// FailureResult reports a rejected invocation with zero steps and a
// machine-readable reason derived from the error code.
func FailureResult(err error, context *string) *Result {
	reason := errors.CodeOf(err).Reason()
	if reason == "" {
		reason = "invalid_input"
	}
	return &Result{
		Type:         "checklist",
		Audience:     "agent",
		Context:      context,
		Steps:        []Step{},
		HumanSummary: "No checklist steps generated: " + err.Error(),
		Meta:         &Meta{State: StateFailure, Reason: reason},
	}
}
