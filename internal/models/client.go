package models

import "time"

// Cliente do escritório, identificado pelo CPF
type Client struct {
	CPF     string `gorm:"primaryKey;size:20" json:"cpf"`
	Name    string `gorm:"size:100;not null" json:"name"`
	Age     int    `gorm:"not null" json:"age"`
	Phone   string `gorm:"size:20;not null" json:"phone"`
	Address string `gorm:"size:255;not null" json:"address"`
	Email   string `gorm:"size:100;not null" json:"email"`

	CreatedAt time.Time `json:"created_at"`
}
