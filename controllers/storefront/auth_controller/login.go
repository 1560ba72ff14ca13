package auth_controller

import (
	"errors"
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Login godoc
// @Summary Login
// @Description Authenticate with email and password. Sets the auth_token cookie and returns the JWT.
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body models.LoginRequest true "Login payload"
// @Success 200 {object} models.ApiResponse "Logged in successfully"
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 401 {object} models.ApiResponse "Invalid email or password"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/login [post]
func Login(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid login payload", err.Error()))
		return
	}

	var user models.User
	err := config.StoreGorm.
		WithContext(ctx).
		Where("email = ?", req.Email).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
			return
		}
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to log in"))
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Invalid email or password"))
		return
	}

	token, err := issueAuthCookie(c, &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to issue token"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged in successfully", gin.H{
		"user":  user,
		"token": token,
	}))
}
