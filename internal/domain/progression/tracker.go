package progression

// Snapshot maps every registered gate to its unlocked status at one
// evaluation instant. Callers retain the snapshot between ticks purely to
// diff against the next one; it is never persisted by this package.
type Snapshot map[GateID]bool

// UnlockTransition records one gate moving from locked to unlocked between
// two snapshots.
type UnlockTransition struct {
	ID   GateID
	Type GateType
	Name string
}

// CurrentGateStates evaluates every registered gate and returns the full
// id-to-unlocked mapping.
func CurrentGateStates(r *Registry, ctx EvalContext) Snapshot {
	snapshot := make(Snapshot, r.Len())
	for _, gate := range r.GetAll() {
		snapshot[gate.ID] = Evaluate(gate, ctx).Unlocked
	}
	return snapshot
}

// TrackTransitions diffs the previous snapshot against a fresh evaluation and
// returns the gates that moved from locked to unlocked, in registration
// order. Gates absent from the previous snapshot count as locked. Only the
// locked-to-unlocked edge is reported; a regressed gate simply stops
// appearing until it unlocks again.
func TrackTransitions(r *Registry, previous Snapshot, ctx EvalContext) []UnlockTransition {
	transitions := []UnlockTransition{}
	for _, gate := range r.GetAll() {
		wasUnlocked := previous[gate.ID]
		if wasUnlocked {
			continue
		}
		if Evaluate(gate, ctx).Unlocked {
			transitions = append(transitions, UnlockTransition{
				ID:   gate.ID,
				Type: gate.Type,
				Name: gate.Name,
			})
		}
	}
	return transitions
}
