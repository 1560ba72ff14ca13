package auth_controller

import (
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// Register godoc
// @Summary Register a new user
// @Description Create a user account. Emails must be unique; passwords are stored as bcrypt hashes.
// @Tags Auth
// @Accept json
// @Produce json
// @Param user body models.RegisterRequest true "Registration payload"
// @Success 201 {object} models.ApiResponse "User registered successfully"
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 409 {object} models.ApiResponse "Email already registered"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /auth/register [post]
func Register(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid registration payload", err.Error()))
		return
	}

	var existing int64
	if err := config.StoreGorm.
		WithContext(ctx).
		Model(&models.User{}).
		Where("email = ?", req.Email).
		Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register user"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "An account with this email already exists"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register user"))
		return
	}

	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hash),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Location:  req.Location,
	}

	if err := config.StoreGorm.WithContext(ctx).Create(&user).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to register user"))
		return
	}

	token, err := issueAuthCookie(c, &user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to issue token"))
		return
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "User registered successfully", gin.H{
		"user":  user,
		"token": token,
	}))
}
