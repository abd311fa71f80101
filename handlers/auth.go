package handlers

import (
	"net/http"

	"carexyz/models"
	"carexyz/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// registeredUser is the account echoed back by Register.
type registeredUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// AuthHandler serves account registration and sign-in.
type AuthHandler struct {
	UserService user.UserService
}

func NewAuthHandler(us user.UserService) *AuthHandler {
	return &AuthHandler{UserService: us}
}

// Register handles POST /api/auth/register.
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	u, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Registration failed")
		return
	}

	getLogger(c).Info("user registered", zap.String("userId", u.ID.Hex()))
	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered successfully",
		"user":    registeredUser{ID: u.ID.Hex(), Email: u.Email, Name: u.Name},
	})
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	resp, err := h.UserService.Authenticate(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "Login failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// GoogleSignIn handles POST /api/auth/google.
func (h *AuthHandler) GoogleSignIn(c *gin.Context) {
	var req models.GoogleSignInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "Invalid request body", err)
		return
	}

	resp, err := h.UserService.GoogleSignIn(c.Request.Context(), req.IDToken)
	if err != nil {
		respondError(c, err, "Google sign-in failed")
		return
	}
	c.JSON(http.StatusOK, resp)
}
