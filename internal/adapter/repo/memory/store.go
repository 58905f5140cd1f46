package memory

import (
	"sync"

	"guildhall/internal/app/ports"
	"guildhall/internal/domain/guild"
)

// Store backs the in-memory repositories used by tests and demo mode.
type Store struct {
	mu     sync.RWMutex
	state  guild.State
	events []ports.GateUnlockedEvent
}

func NewStore() *Store {
	return &Store{}
}
