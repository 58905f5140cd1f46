package progression

// Read-only convenience accessors over a registry plus a context. Unknown
// gate ids are never errors; each accessor returns its locked/absent default
// so callers can probe optimistically.

// GateWithStatus pairs a definition with its evaluation result.
type GateWithStatus struct {
	Gate   GateDefinition       `json:"gate"`
	Status GateEvaluationResult `json:"status"`
}

// IsGateUnlocked reports whether a gate is unlocked; false for unknown ids.
func IsGateUnlocked(r *Registry, id GateID, ctx EvalContext) bool {
	gate, ok := r.Get(id)
	if !ok {
		return false
	}
	return Evaluate(gate, ctx).Unlocked
}

// GateStatus returns the full evaluation result; ok is false for unknown ids.
func GateStatus(r *Registry, id GateID, ctx EvalContext) (GateEvaluationResult, bool) {
	gate, ok := r.Get(id)
	if !ok {
		return GateEvaluationResult{}, false
	}
	return Evaluate(gate, ctx), true
}

// GatesByType evaluates every registered gate of one type, in registration
// order.
func GatesByType(r *Registry, gateType GateType, ctx EvalContext) []GateWithStatus {
	gates := r.GetByType(gateType)
	out := make([]GateWithStatus, 0, len(gates))
	for _, gate := range gates {
		out = append(out, GateWithStatus{Gate: gate, Status: Evaluate(gate, ctx)})
	}
	return out
}

// GateUnlockReason returns the blocking reason for a locked gate; ok is false
// both for unknown ids and for unlocked gates.
func GateUnlockReason(r *Registry, id GateID, ctx EvalContext) (string, bool) {
	status, ok := GateStatus(r, id, ctx)
	if !ok || status.Unlocked {
		return "", false
	}
	return status.Reason, true
}

// GateProgress returns a gate's progress fraction; 0 for unknown ids.
func GateProgress(r *Registry, id GateID, ctx EvalContext) float64 {
	status, ok := GateStatus(r, id, ctx)
	if !ok {
		return 0
	}
	return status.Progress
}
