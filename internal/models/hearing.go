package models

import "time"

// Audiência de um processo. O cliente não é gravado: vem sempre do processo.
type Hearing struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CaseNumber string `gorm:"size:50;not null;index" json:"case_number"`
	Case       Case   `gorm:"foreignKey:CaseNumber;references:CaseNumber;constraint:OnUpdate:RESTRICT,OnDelete:RESTRICT;" json:"-"`

	ScheduledAt time.Time `gorm:"not null" json:"scheduled_at"`
	Location    string    `gorm:"size:255;not null" json:"location"`
	HearingType string    `gorm:"size:100;not null" json:"hearing_type"`

	CreatedAt time.Time `json:"created_at"`
}
