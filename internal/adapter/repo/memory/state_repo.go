package memory

import (
	"context"
	"fmt"

	"guildhall/internal/app/ports"
	"guildhall/internal/domain/guild"
)

type GuildStateRepo struct {
	store *Store
}

func NewGuildStateRepo(store *Store) GuildStateRepo {
	return GuildStateRepo{store: store}
}

func (r GuildStateRepo) Get(_ context.Context) (guild.State, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	if r.store.state.Version == 0 {
		return guild.State{}, ports.ErrNotFound
	}
	return r.store.state, nil
}

func (r GuildStateRepo) SaveWithVersion(_ context.Context, state guild.State, expectedVersion int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if r.store.state.Version != expectedVersion {
		return fmt.Errorf("version %d: %w", expectedVersion, ports.ErrConflict)
	}
	state.Version = expectedVersion + 1
	r.store.state = state
	return nil
}

var _ ports.GuildStateRepository = GuildStateRepo{}
