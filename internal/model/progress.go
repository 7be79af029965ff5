package model

import (
	"time"

	"gorm.io/gorm"
)

// PhaseProgress state of one phase within one redesign, table phase_progress
type PhaseProgress struct {
	ProgressID     string     `gorm:"type:uuid;primaryKey"                                                json:"progress_id"`
	RedesignID     string     `gorm:"type:uuid;not null;uniqueIndex:uq_progress_redesign_phase,priority:1" json:"redesign_id"`
	PhaseID        string     `gorm:"type:uuid;not null;uniqueIndex:uq_progress_redesign_phase,priority:2" json:"phase_id"`
	Completed      bool       `gorm:"not null;default:false"                                              json:"completed"`
	StartDate      *time.Time `gorm:"type:date"                                                           json:"start_date"`
	CompletionDate *time.Time `gorm:"type:date"                                                           json:"completion_date"`
	Verification   string     `gorm:"type:text"                                                           json:"verification,omitempty"`
	Notes          string     `gorm:"type:text"                                                           json:"notes,omitempty"`
	ResponsibleID  *string    `gorm:"type:uuid"                                                           json:"responsible_id,omitempty"`
	UpdatedBy      *string    `gorm:"type:uuid"                                                           json:"updated_by,omitempty"`
	UpdatedAt      time.Time  `gorm:"not null;autoUpdateTime:false"                                       json:"updated_at"`

	Phase *Phase `gorm:"foreignKey:PhaseID;references:PhaseID;constraint:OnDelete:CASCADE" json:"phase,omitempty"`
}

// TableName table name
func (PhaseProgress) TableName() string { return "phase_progress" }

func (p *PhaseProgress) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ProgressID)
	return nil
}

// AcceptsEvidence only the academic commission phase takes attachments
func (p *PhaseProgress) AcceptsEvidence() bool {
	return p.Phase != nil && p.Phase.Code == PhaseCodeAcademicCommission
}
