package models

import "time"

const (
	TargetWreath  = "wreath"
	TargetMessage = "message"
)

// The five reaction kinds shared by wreaths and messages. They are
// independent sets: one user may hold all five on the same record.
const (
	KindTodak       = "todak"
	KindSympathize  = "sympathize"
	KindSad         = "sad"
	KindCommemorate = "commemorate"
	KindTogether    = "together"
)

var ReactionKinds = map[string]bool{
	KindTodak:       true,
	KindSympathize:  true,
	KindSad:         true,
	KindCommemorate: true,
	KindTogether:    true,
}

// Reaction is one user's membership in one reaction set of one record.
// The composite unique index enforces set semantics: a user appears at
// most once per (record, kind).
type Reaction struct {
	ID         uint   `gorm:"primaryKey"`
	TargetType string `gorm:"size:10;uniqueIndex:idx_reaction_member,priority:1"`
	TargetID   uint   `gorm:"uniqueIndex:idx_reaction_member,priority:2"`
	Kind       string `gorm:"size:12;uniqueIndex:idx_reaction_member,priority:3"`
	UserID     uint   `gorm:"uniqueIndex:idx_reaction_member,priority:4"`

	CreatedAt time.Time
}

func (Reaction) TableName() string {
	return "reactions"
}
