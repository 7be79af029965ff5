package model

import "gorm.io/gorm"

// PhaseCodeAcademicCommission the only phase that accepts evidence files
const PhaseCodeAcademicCommission = "CA"

// Phase one of the fixed redesign stages (fase), table phases.
// Rows are seeded once; number and code never change afterwards.
type Phase struct {
	PhaseID     string `gorm:"type:uuid;primaryKey"              json:"phase_id"`
	Number      int    `gorm:"not null;unique"                   json:"number"`
	Name        string `gorm:"type:varchar(100);not null"        json:"name"`
	Code        string `gorm:"type:varchar(10);not null;unique"  json:"code"`
	Description string `gorm:"type:text"                         json:"description,omitempty"`
	SortOrder   int    `gorm:"not null;default:0"                json:"sort_order"`
}

// TableName table name
func (Phase) TableName() string { return "phases" }

func (p *Phase) BeforeCreate(*gorm.DB) error {
	ensureID(&p.PhaseID)
	return nil
}
