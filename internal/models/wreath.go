package models

import "time"

// Wreath 헌화 record. Name is the offerer's display name chosen per wreath,
// not the account username.
type Wreath struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Donation int    `json:"donation" gorm:"default:1000"`
	Comment  string `json:"comment,omitempty" gorm:"size:70"`
	Name     string `json:"name" gorm:"size:10"`
	HallID   uint   `json:"hall_id" gorm:"index;not null"`
	UserID   uint   `json:"user_id" gorm:"index;not null"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`

	Hall MemorialHall `json:"-" gorm:"foreignKey:HallID;constraint:OnDelete:CASCADE"`
	User User         `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// WreathMsg is published to the wreath queue on creation; the consumer
// bumps the trending ranking in redis.
type WreathMsg struct {
	HallID   uint `json:"hall_id"`
	WreathID uint `json:"wreath_id"`
	Donation int  `json:"donation"`
}
