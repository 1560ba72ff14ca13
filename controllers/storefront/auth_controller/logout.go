package auth_controller

import (
	"net/http"
	"os"

	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

// Logout godoc
// @Summary Logout
// @Description Logs out the authenticated user by clearing the auth_token cookie.
// @Tags Auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse "Logged out"
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	isProd := os.Getenv("ENV") == "production"
	// delete auth_token (must match name, path, domain, secure, httpOnly)
	c.SetCookie(
		"auth_token",
		"",
		-1, // MaxAge < 0 -> delete
		"/",
		"",
		isProd,
		true, // HttpOnly (same as when set)
	)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Logged out", nil))
}
