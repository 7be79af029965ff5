package model

import "gorm.io/gorm"

// Campus physical site (sede), table campuses
type Campus struct {
	CampusID string `gorm:"type:uuid;primaryKey"               json:"campus_id"`
	Name     string `gorm:"type:varchar(100);not null;unique" json:"name"`
	Address  string `gorm:"type:text"                          json:"address,omitempty"`
	Phone    string `gorm:"type:varchar(20)"                   json:"phone,omitempty"`
	BaseModel
}

// TableName table name
func (Campus) TableName() string { return "campuses" }

func (c *Campus) BeforeCreate(*gorm.DB) error {
	ensureID(&c.CampusID)
	return nil
}
