package validators

import "time"

type CreateHallRequest struct {
	Name    string    `json:"name" binding:"required,max=100"`
	Date    time.Time `json:"date" binding:"required"`
	Info    string    `json:"info" binding:"max=70"`
	Public  *bool     `json:"public"`
	Private bool      `json:"private"`
}

type UpdateHallRequest struct {
	Name    *string    `json:"name,omitempty" binding:"omitempty,max=100"`
	Info    *string    `json:"info,omitempty" binding:"omitempty,max=70"`
	Date    *time.Time `json:"date,omitempty"`
	Public  *bool      `json:"public,omitempty"`
	Private *bool      `json:"private,omitempty"`
}

type ParticipateRequest struct {
	Token string `json:"token"`
}

type CreateWreathRequest struct {
	Donation int    `json:"donation" binding:"omitempty,gt=0"`
	Comment  string `json:"comment" binding:"max=70"`
	Name     string `json:"name" binding:"required,max=10"`
}

type CreateMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type CreateBadWordRequest struct {
	Word string `json:"word" binding:"required,max=50"`
}
