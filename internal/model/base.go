package model

import (
	"time"

	"github.com/google/uuid"
)

// BaseModel audit timestamps. Workflows assign both explicitly; gorm's
// automatic time tracking is switched off.
type BaseModel struct {
	CreatedAt time.Time `gorm:"not null;autoCreateTime:false" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime:false" json:"updated_at"`
}

// Touch stamps both timestamps on a new row
func (b *BaseModel) Touch(now time.Time) {
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

func ensureID(id *string) {
	if *id == "" {
		*id = uuid.New().String()
	}
}
