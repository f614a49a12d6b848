package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/campusbook/appointment-scheduler/internal/config"
	"github.com/campusbook/appointment-scheduler/internal/httperr"
	"github.com/campusbook/appointment-scheduler/internal/httpresp"
	"github.com/campusbook/appointment-scheduler/internal/limiter"
	"github.com/campusbook/appointment-scheduler/internal/middleware"
	"github.com/campusbook/appointment-scheduler/internal/models"
	"github.com/campusbook/appointment-scheduler/internal/validators"
)

const (
	bcryptCost    = 12
	tokenLifetime = 7 * 24 * time.Hour
)

type AuthHandler struct {
	db           *gorm.DB
	config       *config.Config
	loginLimiter *limiter.LoginLimiter
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config, ll *limiter.LoginLimiter) *AuthHandler {
	return &AuthHandler{db: db, config: cfg, loginLimiter: ll}
}

// --------- Requests ---------

type RegisterRequest struct {
	Username   string `json:"username"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Role       string `json:"role"`
	FullName   string `json:"fullName"`
	Department string `json:"department"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	if req.Username == "" || req.Email == "" || req.Password == "" ||
		req.Role == "" || req.FullName == "" {
		httperr.BadRequest(c, "All required fields must be provided")
		return
	}

	if !validators.IsValidRole(req.Role) {
		httperr.BadRequest(c, "Role must be either student or professor")
		return
	}

	if len(req.Username) < 3 || len(req.Username) > 30 {
		httperr.BadRequest(c, "Username must be between 3 and 30 characters")
		return
	}
	if !validators.IsValidUsername(req.Username) {
		httperr.BadRequest(c, "Username can only contain letters, numbers and underscores")
		return
	}
	if !validators.IsValidEmail(req.Email) {
		httperr.BadRequest(c, "Invalid email format")
		return
	}
	if !validators.IsValidPassword(req.Password) {
		httperr.BadRequest(c, "Password must be at least 6 characters and include letters and numbers")
		return
	}
	if !validators.IsValidFullName(req.FullName) {
		httperr.BadRequest(c, "Full name must be between 2 and 100 characters")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := h.db.Model(&models.User{}).
		Where("email = ? OR username = ?", email, req.Username).
		Count(&count).Error; err != nil {
		httperr.Internal(c, "Server error during registration")
		return
	}
	if count > 0 {
		httperr.BadRequest(c, "User with this email or username already exists")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		httperr.Internal(c, "Server error during registration")
		return
	}

	user := models.User{
		Username:     req.Username,
		Email:        email,
		PasswordHash: string(hashed),
		Role:         req.Role,
		FullName:     strings.TrimSpace(req.FullName),
	}
	if dep := strings.TrimSpace(req.Department); dep != "" {
		user.Department = &dep
	}

	if err := h.db.Create(&user).Error; err != nil {
		httperr.Internal(c, "Server error during registration")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Server error during registration")
		return
	}

	httpresp.Created(c, "User registered successfully", gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		httperr.BadRequest(c, "Username and password are required")
		return
	}

	if h.loginLimiter.Blocked(c.Request.Context(), req.Username) {
		httperr.TooManyRequests(c, "Too many login attempts. Try again later.")
		return
	}

	var user models.User
	err := h.db.
		Where("username = ? OR email = ?", req.Username, strings.ToLower(req.Username)).
		First(&user).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			h.loginLimiter.RecordFailure(c.Request.Context(), req.Username)
			httperr.Unauthorized(c, "Invalid credentials")
			return
		}
		httperr.Internal(c, "Server error during login")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.loginLimiter.RecordFailure(c.Request.Context(), req.Username)
		httperr.Unauthorized(c, "Invalid credentials")
		return
	}

	h.loginLimiter.Reset(c.Request.Context(), req.Username)

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "Server error during login")
		return
	}

	httpresp.OKMessage(c, "Login successful", gin.H{
		"user":  user,
		"token": token,
	})
}

func (h *AuthHandler) Profile(c *gin.Context) {
	user := middleware.UserFrom(c)
	httpresp.OK(c, gin.H{"user": user})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":  user.ID.String(),
		"role": user.Role,
		"exp":  time.Now().Add(tokenLifetime).Unix(),
		"iat":  time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
