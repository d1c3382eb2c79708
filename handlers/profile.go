package handlers

import (
	"context"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"bandhan/models"
	"bandhan/store"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson"
)

type UpdateProfileRequest struct {
	FirstName  *string           `json:"firstName"`
	LastName   *string           `json:"lastName"`
	Age        *int              `json:"age" binding:"omitempty,gte=18,lte=100"`
	Gender     *models.Gender    `json:"gender" binding:"omitempty,oneof=male female other"`
	Religion   *models.Religion  `json:"religion" binding:"omitempty,oneof=hindu muslim christian sikh jain buddhist other"`
	Caste      *string           `json:"caste"`
	Education  *models.Education `json:"education" binding:"omitempty,oneof=high_school bachelor master phd other"`
	Occupation *string           `json:"occupation"`
	Bio        *string           `json:"bio" binding:"omitempty,max=500"`
	Interests  []string          `json:"interests"`
	Location   *string           `json:"location"`
}

type UpdatePreferencesRequest struct {
	MinAge             int               `json:"minAge" binding:"required"`
	MaxAge             int               `json:"maxAge" binding:"required"`
	PreferredReligions []models.Religion `json:"preferredReligions"`
	Interests          []string          `json:"interests"`
	Location           string            `json:"location"`
}

// GetProfile returns the caller's own record. The password hash never
// serializes.
func (h *Handler) GetProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.Users.GetByID(ctx, userID)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("profile: fetch failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile applies the provided fields only; absent fields are left
// untouched.
func (h *Handler) UpdateProfile(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	fields := bson.M{}
	if req.FirstName != nil {
		fields["firstName"] = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		fields["lastName"] = strings.TrimSpace(*req.LastName)
	}
	if req.Age != nil {
		fields["age"] = *req.Age
	}
	if req.Gender != nil {
		fields["gender"] = *req.Gender
	}
	if req.Religion != nil {
		fields["religion"] = *req.Religion
	}
	if req.Caste != nil {
		fields["caste"] = strings.TrimSpace(*req.Caste)
	}
	if req.Education != nil {
		fields["education"] = *req.Education
	}
	if req.Occupation != nil {
		fields["occupation"] = strings.TrimSpace(*req.Occupation)
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}
	if req.Interests != nil {
		fields["interests"] = req.Interests
	}
	if req.Location != nil {
		fields["location"] = strings.TrimSpace(*req.Location)
	}

	if len(fields) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No fields to update"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.Users.UpdateProfile(ctx, userID, fields)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("profile: update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// UpdatePreferences replaces the preference sub-record. Out-of-range age
// bounds are clamped into [18,100] rather than rejected; an inverted band is
// stored as-is.
func (h *Handler) UpdatePreferences(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	prefs := models.Preferences{
		MinAge:             req.MinAge,
		MaxAge:             req.MaxAge,
		PreferredReligions: req.PreferredReligions,
		Interests:          req.Interests,
		Location:           req.Location,
	}
	prefs.Normalize()

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	user, err := h.Users.UpdatePreferences(ctx, userID, prefs)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("preferences: update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error updating preferences"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "user": user})
}

// UploadPhoto stores a profile photo under the uploads directory and records
// its public path on the user.
func (h *Handler) UploadPhoto(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("profilePhoto")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No photo file provided"})
		return
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unsupported image type"})
		return
	}

	if err := os.MkdirAll(h.Cfg.UploadDir, 0o755); err != nil {
		log.Error().Err(err).Msg("upload: cannot create uploads dir")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading profile photo"})
		return
	}

	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(h.Cfg.UploadDir, name)); err != nil {
		log.Error().Err(err).Msg("upload: save failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading profile photo"})
		return
	}

	publicPath := "/uploads/" + name

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	if err := h.Users.SetProfilePhoto(ctx, userID, publicPath); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Error().Err(err).Msg("upload: record update failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error uploading profile photo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Profile photo updated!", "profilePhoto": publicPath})
}
