package gormrepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"guildhall/internal/app/ports"
	"guildhall/internal/domain/guild"
)

// singletonStateID: one guild per deployment; the row id is fixed.
const singletonStateID = 1

type GuildStateRepo struct {
	db *gorm.DB
}

func NewGuildStateRepo(db *gorm.DB) GuildStateRepo {
	return GuildStateRepo{db: db}
}

func (r GuildStateRepo) Get(ctx context.Context) (guild.State, error) {
	row := guildStateRow{}
	err := r.db.WithContext(ctx).First(&row, singletonStateID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return guild.State{}, ports.ErrNotFound
	}
	if err != nil {
		return guild.State{}, err
	}
	return rowToState(row)
}

func (r GuildStateRepo) SaveWithVersion(ctx context.Context, state guild.State, expectedVersion int64) error {
	row, err := stateToRow(state)
	if err != nil {
		return err
	}
	row.Version = expectedVersion + 1
	row.UpdatedAt = time.Now()

	if expectedVersion == 0 {
		return r.db.WithContext(ctx).Create(&row).Error
	}

	res := r.db.WithContext(ctx).
		Model(&guildStateRow{}).
		Where("id = ? AND version = ?", singletonStateID, expectedVersion).
		Updates(map[string]any{
			"resources":   row.Resources,
			"facilities":  row.Facilities,
			"adventurers": row.Adventurers,
			"caravans":    row.Caravans,
			"version":     row.Version,
			"updated_at":  row.UpdatedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("version %d: %w", expectedVersion, ports.ErrConflict)
	}
	return nil
}

func stateToRow(state guild.State) (guildStateRow, error) {
	resources, err := json.Marshal(state.Resources)
	if err != nil {
		return guildStateRow{}, err
	}
	facilities, err := json.Marshal(state.Facilities)
	if err != nil {
		return guildStateRow{}, err
	}
	adventurers, err := json.Marshal(state.Adventurers)
	if err != nil {
		return guildStateRow{}, err
	}
	caravans, err := json.Marshal(state.Caravans)
	if err != nil {
		return guildStateRow{}, err
	}
	return guildStateRow{
		ID:          singletonStateID,
		Resources:   resources,
		Facilities:  facilities,
		Adventurers: adventurers,
		Caravans:    caravans,
	}, nil
}

func rowToState(row guildStateRow) (guild.State, error) {
	state := guild.State{Version: row.Version, UpdatedAt: row.UpdatedAt}
	if len(row.Resources) > 0 {
		if err := json.Unmarshal(row.Resources, &state.Resources); err != nil {
			return guild.State{}, err
		}
	}
	if len(row.Facilities) > 0 {
		if err := json.Unmarshal(row.Facilities, &state.Facilities); err != nil {
			return guild.State{}, err
		}
	}
	if len(row.Adventurers) > 0 {
		if err := json.Unmarshal(row.Adventurers, &state.Adventurers); err != nil {
			return guild.State{}, err
		}
	}
	if len(row.Caravans) > 0 {
		if err := json.Unmarshal(row.Caravans, &state.Caravans); err != nil {
			return guild.State{}, err
		}
	}
	return state, nil
}

var _ ports.GuildStateRepository = GuildStateRepo{}
