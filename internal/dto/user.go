package dto

// ── users ──

// CreateUserRequest admin-created account with any role
type CreateUserRequest struct {
	Username  string `json:"username"   binding:"required,min=3,max=150"`
	Email     string `json:"email"      binding:"required,email"`
	FullName  string `json:"full_name"  binding:"required,max=200"`
	Role      string `json:"role"       binding:"required,oneof=admin coordinador gestor revisor"`
	Phone     string `json:"phone"      binding:"omitempty,max=20"`
	Position  string `json:"position"   binding:"omitempty,max=100"`
	FacultyID string `json:"faculty_id" binding:"omitempty,uuid"`
	Password  string `json:"password"   binding:"required,min=8,max=128"`
}

// UpdateUserRoleRequest role change
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin coordinador gestor revisor"`
}

// UserResponse user profile without secrets
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	RoleLabel string    `json:"role_label"`
	CanEdit   bool      `json:"can_edit"`
	Phone     string    `json:"phone,omitempty"`
	Position  string    `json:"position,omitempty"`
	Faculty   *NamedRef `json:"faculty,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt string    `json:"created_at"`
}

// NamedRef id and display name of a related row
type NamedRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
