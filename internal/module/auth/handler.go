package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmayuresh772/inflectionzone-reancare-service/internal/pkg"
)

// AuthHandler handles REST API requests for authentication.
type AuthHandler struct {
	svc Service
}

// NewHandler creates a new AuthHandler with the given service.
func NewHandler(svc Service) *AuthHandler {
	return &AuthHandler{svc: svc}
}

// Login handles POST /api/v1/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	tokenResp, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusOK, "User logged in successfully!", gin.H{"AccessToken": tokenResp})
}

// Register handles POST /api/v1/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	user, err := h.svc.Register(c.Request.Context(), RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Prefix:    req.Prefix,
		Phone:     req.Phone,
		Email:     req.Email,
		Gender:    req.Gender,
		BirthDate: req.BirthDate,
		Role:      req.Role,
		Password:  req.Password,
	})
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, http.StatusCreated, "User created successfully!", gin.H{"User": user})
}
