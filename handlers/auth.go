package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"bandhan/models"
	"bandhan/store"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

type RegisterRequest struct {
	FirstName  string           `json:"firstName" binding:"required"`
	LastName   string           `json:"lastName"`
	Email      string           `json:"email" binding:"required,email"`
	Password   string           `json:"password" binding:"required,min=8"`
	Gender     models.Gender    `json:"gender" binding:"required,oneof=male female other"`
	Age        int              `json:"age" binding:"required,gte=18,lte=100"`
	Bio        string           `json:"bio" binding:"max=500"`
	Religion   models.Religion  `json:"religion" binding:"omitempty,oneof=hindu muslim christian sikh jain buddhist other"`
	Caste      string           `json:"caste"`
	Education  models.Education `json:"education" binding:"omitempty,oneof=high_school bachelor master phd other"`
	Occupation string           `json:"occupation"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register creates an account, seeds default preferences and issues a token
// so the client is signed in straight away.
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	user := &models.User{
		FirstName:   strings.TrimSpace(req.FirstName),
		LastName:    strings.TrimSpace(req.LastName),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Password:    string(hashed),
		Gender:      req.Gender,
		Age:         req.Age,
		Bio:         req.Bio,
		Religion:    req.Religion,
		Caste:       req.Caste,
		Education:   req.Education,
		Occupation:  req.Occupation,
		Preferences: models.DefaultPreferences(req.Religion),
	}

	if err := h.Users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		log.Error().Err(err).Msg("register: insert failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during registration"})
		return
	}

	token, err := h.Tokens.Generate(user.ID.Hex())
	if err != nil {
		log.Error().Err(err).Msg("register: token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"token": token,
		"user": gin.H{
			"id":        user.ID.Hex(),
			"firstName": user.FirstName,
			"email":     user.Email,
		},
	})
}

// Login verifies credentials and issues a token. Unknown email and wrong
// password are indistinguishable to the caller.
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.Users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("login: lookup failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server error during login"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token, err := h.Tokens.Generate(user.ID.Hex())
	if err != nil {
		log.Error().Err(err).Msg("login: token generation failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": gin.H{
			"id":           user.ID.Hex(),
			"firstName":    user.FirstName,
			"email":        user.Email,
			"profilePhoto": user.ProfilePhoto,
		},
	})
}
