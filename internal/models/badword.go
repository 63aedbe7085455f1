package models

type BadWord struct {
	ID   uint   `json:"id" gorm:"primaryKey"`
	Word string `json:"word" gorm:"size:50;uniqueIndex"`
}
