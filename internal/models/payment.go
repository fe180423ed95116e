package models

import "time"

type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	ClientCPF string `gorm:"size:20;not null;index" json:"client_cpf"`
	Client    Client `gorm:"foreignKey:ClientCPF;references:CPF;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT;" json:"-"`

	Amount      float64 `gorm:"type:numeric(12,2);not null" json:"amount"`
	Description string  `gorm:"size:255;not null" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
