package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopease/backend/internal/core/domain"
	"github.com/shopease/backend/internal/core/port"
	"go.uber.org/zap"
)

type UserHandler struct {
	Handler
	service port.Service
}

func NewUserHandler(service port.Service, logger *zap.Logger) (*UserHandler, error) {
	return &UserHandler{
		Handler: *NewHandler(logger),
		service: service,
	}, nil
}

type registerRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

func (uh *UserHandler) RegisterUser(ctx *gin.Context) {
	var req registerRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		uh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	user := &domain.User{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		Role:     domain.UserRole(req.Role),
	}

	newUser, err := uh.service.RegisterUser(ctx, user)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, newUserResponse(newUser))
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (uh *UserHandler) LoginUser(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		uh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	token, user, err := uh.service.LoginUser(ctx, req.Email, req.Password)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccess(ctx, gin.H{
		"message": "Login successful",
		"role":    user.Role,
		"token":   token,
	})
}

func (uh *UserHandler) ListUsers(ctx *gin.Context) {
	list, err := uh.service.ListUsers(ctx, ctx.Query("q"))
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	result := make([]UserResponse, 0, len(list))
	for _, user := range list {
		result = append(result, newUserResponse(user))
	}
	uh.handleSuccess(ctx, result)
}

type changeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (uh *UserHandler) ChangeUserRole(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		uh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	var req changeRoleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		uh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err = uh.service.ChangeUserRole(ctx, userID, domain.UserRole(req.Role))
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}

func (uh *UserHandler) DeleteUser(ctx *gin.Context) {
	userID, err := parseIDParam(ctx, "id")
	if err != nil {
		uh.handleValidationError(ctx, domain.ErrBadRequest)
		return
	}

	err = uh.service.DeleteUser(ctx, userID)
	if err != nil {
		uh.handleError(ctx, err)
		return
	}

	uh.handleSuccessWithStatus(ctx, nil, http.StatusNoContent)
}
