package gormrepo

import "time"

// guildStateRow persists the singleton guild aggregate. Entity collections
// are stored as JSON documents; the gating engine only ever reads them as a
// whole, so relational modelling buys nothing here.
type guildStateRow struct {
	ID          int64  `gorm:"primaryKey"`
	Resources   []byte `gorm:"type:jsonb"`
	Facilities  []byte `gorm:"type:jsonb"`
	Adventurers []byte `gorm:"type:jsonb"`
	Caravans    []byte `gorm:"type:jsonb"`
	Version     int64
	UpdatedAt   time.Time
}

func (guildStateRow) TableName() string { return "guild_states" }

type unlockEventRow struct {
	EventID    string `gorm:"primaryKey"`
	GateID     string `gorm:"index"`
	GateType   string
	GateName   string
	OccurredAt time.Time `gorm:"index"`
}

func (unlockEventRow) TableName() string { return "unlock_events" }
