package models

import "time"

// Processo jurídico de um cliente
type Case struct {
	CaseNumber string `gorm:"primaryKey;size:50" json:"case_number"`

	ClientCPF string `gorm:"size:20;not null;index" json:"client_cpf"`
	Client    Client `gorm:"foreignKey:ClientCPF;references:CPF;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT;" json:"-"`

	Description string `gorm:"type:text;not null" json:"description"`

	CreatedAt time.Time `json:"created_at"`
}
