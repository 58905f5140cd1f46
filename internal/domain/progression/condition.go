package progression

import (
	"fmt"
	"math"
	"strconv"
)

// ConditionResult is the outcome of evaluating a single condition. Reason is
// set only when unsatisfied. Progress is nil for conditions with no natural
// progress notion; composites treat nil as 0 when aggregating.
type ConditionResult struct {
	Condition Condition `json:"condition"`
	Satisfied bool      `json:"satisfied"`
	Reason    string    `json:"reason,omitempty"`
	Progress  *float64  `json:"progress,omitempty"`
}

// EvaluateCondition evaluates one condition against a context. It is total:
// malformed parameter bags degrade to unsatisfied results (with NaN progress
// where the arithmetic is undefined) rather than panicking, and unregistered
// kinds fail closed.
func EvaluateCondition(c Condition, ctx EvalContext) ConditionResult {
	switch c.Kind {
	case ConditionResource:
		return evalResource(c, ctx)
	case ConditionEntityTier:
		return evalEntityTier(c, ctx)
	case ConditionEntityExists:
		return evalEntityExists(c, ctx)
	case ConditionFameMilestone:
		return evalFameMilestone(c, ctx)
	case ConditionAll:
		return evalAll(c, ctx)
	case ConditionAny:
		return evalAny(c, ctx)
	case ConditionExpr:
		return evalExpr(c, ctx)
	default:
		return ConditionResult{
			Condition: c,
			Satisfied: false,
			Reason:    fmt.Sprintf("Unknown condition type: %s", c.Kind),
			Progress:  progressOf(0),
		}
	}
}

func evalResource(c Condition, ctx EvalContext) ConditionResult {
	resourceType := c.stringParam("resourceType")
	min := c.floatParam("minAmount")
	current := ctx.Resource(resourceType)

	return thresholdResult(c, current, min,
		fmt.Sprintf("Need %s %s, have %s", formatAmount(min), resourceType, formatAmount(current)))
}

func evalFameMilestone(c Condition, ctx EvalContext) ConditionResult {
	min := c.floatParam("minFame")
	current := ctx.Resource(ResourceFame)

	return thresholdResult(c, current, min,
		fmt.Sprintf("Need %s fame, have %s", formatAmount(min), formatAmount(current)))
}

func evalEntityTier(c Condition, ctx EvalContext) ConditionResult {
	entityType := c.stringParam("entityType")
	target := c.stringParam("target")
	min := c.floatParam("minTier")

	e, found := ctx.findEntity(entityType, target)
	if !found {
		return ConditionResult{
			Condition: c,
			Satisfied: false,
			Reason:    fmt.Sprintf("%s not found", entityType),
			Progress:  progressOf(0),
		}
	}

	tier := float64(entityTier(e))
	return thresholdResult(c, tier, min,
		fmt.Sprintf("%s must reach tier %s, currently tier %s", entityType, formatAmount(min), formatAmount(tier)))
}

func evalEntityExists(c Condition, ctx EvalContext) ConditionResult {
	entityType := c.stringParam("entityType")
	target := c.stringParam("target")

	if _, found := ctx.findEntity(entityType, target); found {
		return ConditionResult{Condition: c, Satisfied: true, Progress: progressOf(1)}
	}
	return ConditionResult{
		Condition: c,
		Satisfied: false,
		Reason:    fmt.Sprintf("%s not found", entityType),
		Progress:  progressOf(0),
	}
}

func evalAll(c Condition, ctx EvalContext) ConditionResult {
	satisfied := true
	sum := 0.0
	for _, nested := range c.Nested {
		r := EvaluateCondition(nested, ctx)
		if !r.Satisfied {
			satisfied = false
		}
		if r.Progress != nil {
			sum += *r.Progress
		}
	}

	progress := 1.0
	if len(c.Nested) > 0 {
		progress = sum / float64(len(c.Nested))
	}
	result := ConditionResult{Condition: c, Satisfied: satisfied, Progress: progressOf(progress)}
	if !satisfied {
		result.Reason = "Not all sub-conditions satisfied"
	}
	return result
}

func evalAny(c Condition, ctx EvalContext) ConditionResult {
	satisfied := false
	max := 0.0
	for _, nested := range c.Nested {
		r := EvaluateCondition(nested, ctx)
		if r.Satisfied {
			satisfied = true
		}
		if r.Progress != nil && *r.Progress > max {
			max = *r.Progress
		}
	}

	result := ConditionResult{Condition: c, Satisfied: satisfied, Progress: progressOf(max)}
	if !satisfied {
		result.Reason = "None of the sub-conditions satisfied"
	}
	return result
}

// thresholdResult implements the shared current-vs-minimum semantics of the
// numeric condition kinds. A threshold of zero (or below) is trivially
// satisfied with progress 1; a missing threshold parameter arrives as NaN,
// which fails every comparison and propagates through the progress ratio.
func thresholdResult(c Condition, current, min float64, failReason string) ConditionResult {
	if min <= 0 {
		return ConditionResult{Condition: c, Satisfied: true, Progress: progressOf(1)}
	}

	result := ConditionResult{
		Condition: c,
		Satisfied: current >= min,
		Progress:  progressOf(clampProgress(current / min)),
	}
	if !result.Satisfied {
		result.Reason = failReason
	}
	return result
}

// clampProgress bounds a ratio to [0, 1], letting NaN through untouched.
func clampProgress(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

func progressOf(v float64) *float64 {
	return &v
}

// stringParam returns the named parameter when it is a string, "" otherwise.
func (c Condition) stringParam(key string) string {
	s, _ := c.Params[key].(string)
	return s
}

// floatParam returns the named numeric parameter, accepting the numeric types
// JSON and YAML decoders produce. Missing or mistyped values come back as NaN
// so that downstream comparisons fail rather than trip over a fabricated zero.
func (c Condition) floatParam(key string) float64 {
	switch v := c.Params[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return math.NaN()
	}
}

func formatAmount(v float64) string {
	if v == math.Trunc(v) && !math.IsInf(v, 0) && !math.IsNaN(v) {
		return strconv.FormatInt(int64(v), 10)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}
