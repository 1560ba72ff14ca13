package user_controller

import (
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/middleware"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// UpdatePassword godoc
// @Summary Change password
// @Description Change the authenticated user's password. Requires the current password.
// @Tags User
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param password body models.UpdatePasswordRequest true "Password payload"
// @Success 200 {object} models.ApiResponse "Password updated successfully"
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 401 {object} models.ApiResponse "Current password is incorrect"
// @Router /user/password [patch]
func UpdatePassword(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid password payload", err.Error()))
		return
	}

	var user models.User
	if err := config.StoreGorm.WithContext(ctx).First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update password"))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.CurrentPassword)) != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Current password is incorrect"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update password"))
		return
	}

	if err := config.StoreGorm.
		WithContext(ctx).
		Model(&user).
		Update("password", string(hash)).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update password"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Password updated successfully", nil))
}
