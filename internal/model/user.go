package model

import "gorm.io/gorm"

// Roles
const (
	RoleAdmin       = "admin"
	RoleCoordinator = "coordinador"
	RoleManager     = "gestor"
	RoleReviewer    = "revisor"
)

// RoleLabels display names of roles
var RoleLabels = map[string]string{
	RoleAdmin:       "Administrador",
	RoleCoordinator: "Coordinador",
	RoleManager:     "Gestor Curricular",
	RoleReviewer:    "Revisor",
}

// IsValidRole reports whether role is a known role
func IsValidRole(role string) bool {
	_, ok := RoleLabels[role]
	return ok
}

// CanEdit reports whether role may change progress rows and evidence.
// Reviewers are read-only; unknown roles are denied.
func CanEdit(role string) bool {
	switch role {
	case RoleAdmin, RoleCoordinator, RoleManager:
		return true
	default:
		return false
	}
}

// User account of a staff member, table users
type User struct {
	UserID       string  `gorm:"type:uuid;primaryKey"                          json:"user_id"`
	Username     string  `gorm:"type:varchar(150);not null;unique"            json:"username"`
	FullName     string  `gorm:"type:varchar(200);not null"                    json:"full_name"`
	Email        string  `gorm:"type:varchar(254);not null"                    json:"email"`
	PasswordHash string  `gorm:"type:varchar(255);not null"                    json:"-"`
	Role         string  `gorm:"type:varchar(20);not null;default:'revisor'"   json:"role"`
	Phone        string  `gorm:"type:varchar(20)"                              json:"phone,omitempty"`
	Position     string  `gorm:"type:varchar(100)"                             json:"position,omitempty"`
	FacultyID    *string `gorm:"type:uuid"                                     json:"faculty_id,omitempty"`
	IsActive     bool    `gorm:"not null"                                      json:"is_active"`
	BaseModel

	Faculty *Faculty `gorm:"foreignKey:FacultyID;references:FacultyID;constraint:OnDelete:SET NULL" json:"faculty,omitempty"`
}

// TableName table name
func (User) TableName() string { return "users" }

func (u *User) BeforeCreate(*gorm.DB) error {
	ensureID(&u.UserID)
	return nil
}
