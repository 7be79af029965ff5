package model

import "gorm.io/gorm"

// Faculty academic faculty (facultad), table faculties
type Faculty struct {
	FacultyID   string `gorm:"type:uuid;primaryKey"               json:"faculty_id"`
	Name        string `gorm:"type:varchar(200);not null;unique" json:"name"`
	Description string `gorm:"type:text"                          json:"description,omitempty"`
	BaseModel
}

// TableName table name
func (Faculty) TableName() string { return "faculties" }

func (f *Faculty) BeforeCreate(*gorm.DB) error {
	ensureID(&f.FacultyID)
	return nil
}
