package model

import (
	"time"

	"gorm.io/gorm"
)

// Redesign statuses
const (
	RedesignInProgress = "en_proceso"
	RedesignCompleted  = "completado"
	RedesignSuspended  = "suspendido"
)

// RedesignStatusLabels display names of redesign statuses
var RedesignStatusLabels = map[string]string{
	RedesignInProgress: "En Proceso",
	RedesignCompleted:  "Completado",
	RedesignSuspended:  "Suspendido",
}

// IsValidRedesignStatus reports whether status is a known redesign status
func IsValidRedesignStatus(status string) bool {
	_, ok := RedesignStatusLabels[status]
	return ok
}

// ProgressDenominator fixed divisor of the completion percentage.
// It stays 10 even though 12 phases are seeded.
const ProgressDenominator = 10

// ProgressPercent completion percentage for the given number of completed phases
func ProgressPercent(completed int64) int {
	return int(float64(completed) / ProgressDenominator * 100)
}

// Redesign one redesign effort of a program in a given year, table redesigns
type Redesign struct {
	RedesignID     string     `gorm:"type:uuid;primaryKey"                                          json:"redesign_id"`
	ProgramID      string     `gorm:"type:uuid;not null;uniqueIndex:uq_redesigns_program_year,priority:1" json:"program_id"`
	Year           int        `gorm:"not null;uniqueIndex:uq_redesigns_program_year,priority:2"          json:"year"`
	StartDate      time.Time  `gorm:"type:date;not null"                                            json:"start_date"`
	CompletionDate *time.Time `gorm:"type:date"                                                     json:"completion_date"`
	Status         string     `gorm:"type:varchar(20);not null;default:'en_proceso';index"          json:"status"`
	Notes          string     `gorm:"type:text"                                                     json:"notes,omitempty"`
	CreatedBy      *string    `gorm:"type:uuid"                                                     json:"created_by,omitempty"`
	BaseModel

	Program  *Program        `gorm:"foreignKey:ProgramID;references:ProgramID;constraint:OnDelete:CASCADE" json:"program,omitempty"`
	Progress []PhaseProgress `gorm:"foreignKey:RedesignID;references:RedesignID;constraint:OnDelete:CASCADE" json:"progress,omitempty"`
}

// TableName table name
func (Redesign) TableName() string { return "redesigns" }

func (r *Redesign) BeforeCreate(*gorm.DB) error {
	ensureID(&r.RedesignID)
	return nil
}
