package auth_controller

import (
	"os"

	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/JK-asthetic/SmartStoreFront/utils"
	"github.com/gin-gonic/gin"
)

// issueAuthCookie signs a JWT for the user and sets it as an HttpOnly cookie.
// The token is also returned so API clients can use bearer auth instead.
func issueAuthCookie(c *gin.Context, user *models.User) (string, error) {
	token, err := utils.GenerateJWT(user.ID, user.Email, user.Username)
	if err != nil {
		return "", err
	}

	isProd := os.Getenv("ENV") == "production"
	c.SetCookie(
		"auth_token",
		token,
		60*60*24, // 24h, matches default JWT_EXPIRY
		"/",
		"",
		isProd,
		true, // HttpOnly
	)

	return token, nil
}
