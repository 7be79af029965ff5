package handler

import (
	"github.com/gin-gonic/gin"

	"uatf-curricular/backend/internal/dto"
	"uatf-curricular/backend/internal/service"
	"uatf-curricular/backend/pkg/response"
)

// UserHandler account administration
type UserHandler struct {
	userSvc service.UserService
}

// NewUserHandler creates UserHandler
func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// ListUsers
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *gin.Context) {
	var page dto.PaginationRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		badRequest(c, err)
		return
	}
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	users, total, err := h.userSvc.List(c.Request.Context(), actor, &page)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OKPage(c, users, total, page.GetPage(), page.GetPageSize())
}

// CreateUser any role, admin only
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	user, err := h.userSvc.Create(c.Request.Context(), actor, &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Created(c, user)
}

// AssignRole
// PUT /api/v1/users/:id/role
func (h *UserHandler) AssignRole(c *gin.Context) {
	var req dto.UpdateUserRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	user, err := h.userSvc.UpdateRole(c.Request.Context(), actor, c.Param("id"), req.Role)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, user)
}
