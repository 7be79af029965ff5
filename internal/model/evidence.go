package model

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

// Evidence document attached to an academic commission progress row, table evidences
type Evidence struct {
	EvidenceID   string    `gorm:"type:uuid;primaryKey"         json:"evidence_id"`
	ProgressID   string    `gorm:"type:uuid;not null;index"     json:"progress_id"`
	StorageKey   string    `gorm:"type:varchar(500);not null"   json:"-"`
	OriginalName string    `gorm:"type:varchar(255);not null"   json:"original_name"`
	Description  string    `gorm:"type:varchar(500)"            json:"description,omitempty"`
	SizeBytes    int64     `gorm:"not null"                     json:"size_bytes"`
	MimeType     string    `gorm:"type:varchar(100);not null"   json:"mime_type"`
	UploadedBy   *string   `gorm:"type:uuid"                    json:"uploaded_by,omitempty"`
	UploadedAt   time.Time `gorm:"not null;autoCreateTime:false" json:"uploaded_at"`

	Progress *PhaseProgress `gorm:"foreignKey:ProgressID;references:ProgressID;constraint:OnDelete:CASCADE" json:"-"`
}

// TableName table name
func (Evidence) TableName() string { return "evidences" }

func (e *Evidence) BeforeCreate(*gorm.DB) error {
	ensureID(&e.EvidenceID)
	return nil
}

// HumanSize formats a byte count as "512.0 bytes", "1.5 MB" and so on
func HumanSize(size int64) string {
	units := []string{"bytes", "KB", "MB", "GB"}
	value := float64(size)
	for _, unit := range units {
		if value < 1024 {
			return fmt.Sprintf("%.1f %s", value, unit)
		}
		value /= 1024
	}
	return fmt.Sprintf("%.1f TB", value)
}
