package gates

import (
	"guildhall/internal/app/ports"
	"guildhall/internal/domain/progression"
)

type ListRequest struct {
	GateType string
}

type ListResponse struct {
	Gates []progression.GateWithStatus `json:"gates"`
}

type StatusRequest struct {
	GateID string
}

type StatusResponse struct {
	Gate   progression.GateDefinition       `json:"gate"`
	Status progression.GateEvaluationResult `json:"status"`
}

type ProgressRequest struct {
	GateID string
}

type ProgressResponse struct {
	GateID        string                     `json:"gate_id"`
	Unlocked      bool                       `json:"unlocked"`
	Progress      float64                    `json:"progress"`
	Reason        string                     `json:"reason,omitempty"`
	NextThreshold *progression.NextThreshold `json:"next_threshold,omitempty"`
}

type TickResponse struct {
	Events   []ports.GateUnlockedEvent `json:"events"`
	Snapshot progression.Snapshot      `json:"snapshot"`
}
