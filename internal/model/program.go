package model

import "gorm.io/gorm"

// Degree levels
const (
	DegreeLicentiate       = "licenciatura"
	DegreeHigherTechnician = "tecnico_superior"
	DegreeMidTechnician    = "tecnico_medio"
)

// DegreeLabels display names of degree levels
var DegreeLabels = map[string]string{
	DegreeLicentiate:       "Licenciatura",
	DegreeHigherTechnician: "Técnico Superior",
	DegreeMidTechnician:    "Técnico Medio",
}

// IsValidDegree reports whether level is one of the known degree levels
func IsValidDegree(level string) bool {
	_, ok := DegreeLabels[level]
	return ok
}

// Program degree program (carrera) offered at a campus under a faculty, table programs
type Program struct {
	ProgramID   string `gorm:"type:uuid;primaryKey"                                                          json:"program_id"`
	FacultyID   string `gorm:"type:uuid;not null;uniqueIndex:uq_programs_faculty_campus_name,priority:1"         json:"faculty_id"`
	CampusID    string `gorm:"type:uuid;not null;uniqueIndex:uq_programs_faculty_campus_name,priority:2"         json:"campus_id"`
	Name        string `gorm:"type:varchar(200);not null;uniqueIndex:uq_programs_faculty_campus_name,priority:3" json:"name"`
	DegreeLevel string `gorm:"type:varchar(20);not null;default:'licenciatura'"                              json:"degree_level"`
	IsActive    bool   `gorm:"not null"                                                                      json:"is_active"`
	BaseModel

	Faculty *Faculty `gorm:"foreignKey:FacultyID;references:FacultyID;constraint:OnDelete:CASCADE" json:"faculty,omitempty"`
	Campus  *Campus  `gorm:"foreignKey:CampusID;references:CampusID;constraint:OnDelete:CASCADE"   json:"campus,omitempty"`
}

// TableName table name
func (Program) TableName() string { return "programs" }

func (p *Program) BeforeCreate(*gorm.DB) error {
	ensureID(&p.ProgramID)
	return nil
}
