package user_controller

import (
	"errors"
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/middleware"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GetPreferences godoc
// @Summary Get shopping preferences
// @Description Get the authenticated user's preferred categories. Returns an empty list when none are saved.
// @Tags User
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Preferences fetched successfully"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /user/preferences [get]
func GetPreferences(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var pref models.UserPreference
	err := config.StoreGorm.
		WithContext(ctx).
		Where("user_id = ?", userID).
		First(&pref).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			pref = models.UserPreference{UserID: userID, PreferredCategories: models.StrList{}}
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch preferences"))
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Preferences fetched successfully", pref))
}

// SavePreferences godoc
// @Summary Save shopping preferences
// @Description Replace the authenticated user's preferred categories.
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param preferences body models.PreferencesRequest true "Preferences payload"
// @Success 200 {object} models.ApiResponse "Preferences saved successfully"
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Router /user/preferences [post]
func SavePreferences(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.PreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid preferences payload", err.Error()))
		return
	}

	pref := models.UserPreference{
		UserID:              userID,
		PreferredCategories: models.StrList(req.PreferredCategories),
	}

	// One row per user, newest write wins
	err := config.StoreGorm.
		WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"preferred_categories"}),
		}).
		Create(&pref).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save preferences"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Preferences saved successfully", pref))
}
