package models

import "time"

// Message 추모글. Content has already been through the badword filter by
// the time it is stored.
type Message struct {
	ID      uint   `json:"id" gorm:"primaryKey"`
	Content string `json:"content" gorm:"type:text"`
	HallID  uint   `json:"hall_id" gorm:"index;not null"`
	UserID  uint   `json:"user_id" gorm:"index;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Hall MemorialHall `json:"-" gorm:"foreignKey:HallID;constraint:OnDelete:CASCADE"`
	User User         `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
