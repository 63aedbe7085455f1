package models

import "time"

// MemorialHall 추모관. Public and Private are independent flags: a hall
// can be taken out of the catalog without being token-gated. Token is
// assigned once at creation and never changes.
type MemorialHall struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:100"`
	Date      time.Time `json:"date"`
	Info      string    `json:"info" gorm:"size:70"`
	// No gorm defaults on the flags: a zero value with a default tag
	// would silently become the column default on insert.
	Public    bool      `json:"public"`
	Private   bool      `json:"private"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	Token     string    `json:"-" gorm:"size:36;uniqueIndex"`
	Approved  bool      `json:"approved"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// Participation links a user to a hall they joined. Composite primary key
// makes add idempotent at the storage level.
type Participation struct {
	HallID uint `gorm:"primaryKey"`
	UserID uint `gorm:"primaryKey"`

	CreatedAt time.Time
}
