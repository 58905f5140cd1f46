package progression

import (
	"fmt"
	"strings"
)

// NextThreshold describes the nearest outstanding numeric gap of a gate, for
// UI progress bars.
type NextThreshold struct {
	Threshold   float64 `json:"threshold"`
	Current     float64 `json:"current"`
	Remaining   float64 `json:"remaining"`
	Description string  `json:"description,omitempty"`
}

// GateEvaluationResult is the full outcome of evaluating one gate. Reason is
// set only when locked. Conditions holds the results of the required set
// only; alternative sets influence Unlocked but never Progress or Reason.
type GateEvaluationResult struct {
	Unlocked      bool              `json:"unlocked"`
	Reason        string            `json:"reason,omitempty"`
	Progress      float64           `json:"progress"`
	Conditions    []ConditionResult `json:"conditions"`
	NextThreshold *NextThreshold    `json:"next_threshold,omitempty"`
}

// Evaluate determines a gate's unlock status against a context.
//
// The required set is an implicit AND; an empty required set unlocks
// unconditionally with progress 1. When the required set fails, each
// alternative set (an AND-list) is tried in declaration order and any fully
// satisfied one unlocks the gate. Reported progress is always the mean of
// the required results, keeping UI progress locked to the primary path even
// when an alternative unlocked the gate.
func Evaluate(gate GateDefinition, ctx EvalContext) GateEvaluationResult {
	results := make([]ConditionResult, 0, len(gate.Conditions))
	requiredSatisfied := true
	for _, c := range gate.Conditions {
		r := EvaluateCondition(c, ctx)
		if !r.Satisfied {
			requiredSatisfied = false
		}
		results = append(results, r)
	}

	unlocked := requiredSatisfied
	if !unlocked {
		for _, alternative := range gate.Alternatives {
			if alternativeSatisfied(alternative, ctx) {
				unlocked = true
				break
			}
		}
	}

	result := GateEvaluationResult{
		Unlocked:   unlocked,
		Progress:   requiredProgress(results),
		Conditions: results,
	}
	if !unlocked {
		result.Reason = unlockReason(results)
		result.NextThreshold = nextThreshold(results, ctx)
	}
	return result
}

func alternativeSatisfied(conditions []Condition, ctx EvalContext) bool {
	if len(conditions) == 0 {
		return false
	}
	for _, c := range conditions {
		if !EvaluateCondition(c, ctx).Satisfied {
			return false
		}
	}
	return true
}

// requiredProgress is the mean of the required results' progress values,
// counting absent progress as 0. An empty required set is full progress.
func requiredProgress(results []ConditionResult) float64 {
	if len(results) == 0 {
		return 1
	}
	sum := 0.0
	for _, r := range results {
		if r.Progress != nil {
			sum += *r.Progress
		}
	}
	return sum / float64(len(results))
}

// unlockReason builds the blocking reason from the unsatisfied required
// results: each result's own reason, falling back to the condition's declared
// description, falling back to a generic line. A single reason is used
// verbatim; several are joined into one "Requires:" list.
func unlockReason(results []ConditionResult) string {
	reasons := []string{}
	for _, r := range results {
		if r.Satisfied {
			continue
		}
		reason := r.Reason
		if reason == "" {
			reason = r.Condition.Description
		}
		if reason == "" {
			reason = "Condition not met"
		}
		reasons = append(reasons, reason)
	}
	if len(reasons) == 0 {
		return ""
	}
	if len(reasons) == 1 {
		return reasons[0]
	}
	return "Requires: " + strings.Join(reasons, ", ")
}

// nextThreshold scans the required results for the first numeric condition
// still short of full progress and re-derives its gap from the condition
// parameters. Non-numeric and composite conditions are skipped.
func nextThreshold(results []ConditionResult, ctx EvalContext) *NextThreshold {
	for _, r := range results {
		if r.Progress != nil && !(*r.Progress < 1) {
			continue
		}

		c := r.Condition
		var threshold, current float64
		var description string
		switch c.Kind {
		case ConditionResource:
			resourceType := c.stringParam("resourceType")
			threshold = c.floatParam("minAmount")
			current = ctx.Resource(resourceType)
			description = fmt.Sprintf("Reach %s %s", formatAmount(threshold), resourceType)
		case ConditionFameMilestone:
			threshold = c.floatParam("minFame")
			current = ctx.Resource(ResourceFame)
			description = fmt.Sprintf("Reach %s fame", formatAmount(threshold))
		case ConditionEntityTier:
			threshold = c.floatParam("minTier")
			if e, found := ctx.findEntity(c.stringParam("entityType"), c.stringParam("target")); found {
				current = float64(entityTier(e))
			}
			description = fmt.Sprintf("Upgrade %s to tier %s", c.stringParam("entityType"), formatAmount(threshold))
		default:
			continue
		}
		if c.Description != "" {
			description = c.Description
		}

		remaining := threshold - current
		if remaining < 0 {
			remaining = 0
		}
		return &NextThreshold{
			Threshold:   threshold,
			Current:     current,
			Remaining:   remaining,
			Description: description,
		}
	}
	return nil
}
