package models

import "time"

// LoginCode is a teacher-issued code that enrolls a registering student into a class.
type LoginCode struct {
	Code        string    `json:"code"`
	ClassName   string    `json:"class_name"`
	BlockNumber string    `json:"block_number"`
	School      string    `json:"school"`
	Grade       string    `json:"grade"`
	MaxUses     int       `json:"max_uses"`
	CurrentUses int       `json:"current_uses"`
	ExpiresAt   Timestamp `json:"expires_at"`
	Active      bool      `json:"active"`
}

func (c LoginCode) Usable(now time.Time) bool {
	return c.Active && c.CurrentUses < c.MaxUses && now.Before(c.ExpiresAt.Time)
}

type ClassInfo struct {
	ClassName   string `json:"class_name"`
	BlockNumber string `json:"block_number"`
	School      string `json:"school"`
	Grade       string `json:"grade"`
}

type LoginCodeInput struct {
	ClassName     string `json:"class_name" validate:"required"`
	BlockNumber   string `json:"block_number" validate:"required"`
	School        string `json:"school" validate:"required"`
	Grade         string `json:"grade" validate:"required"`
	MaxUses       int    `json:"max_uses" validate:"min=1,max=500"`
	ExpiresInDays int    `json:"expires_in_days" validate:"min=1,max=365"`
}
