package newsletter_controller

import (
	"log"
	"net/http"
	"sync"

	"github.com/JK-asthetic/SmartStoreFront/config"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/JK-asthetic/SmartStoreFront/services"
	"github.com/gin-gonic/gin"
)

var (
	resendOnce   sync.Once
	resendClient *services.ResendClient
)

// env is loaded by main before any request arrives, so the client is built
// lazily on first signup rather than at package init.
func resend() *services.ResendClient {
	resendOnce.Do(func() {
		resendClient = services.NewResendClient()
	})
	return resendClient
}

// Subscribe godoc
// @Summary Subscribe to the newsletter
// @Description Add an email to the newsletter list. Duplicate signups are acknowledged without creating a second row. A welcome email is sent when Resend is configured.
// @Tags Newsletter
// @Accept json
// @Produce json
// @Param subscription body models.SubscribeRequest true "Subscription payload"
// @Success 201 {object} models.ApiResponse "Subscribed successfully"
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Router /newsletter [post]
func Subscribe(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	var req models.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "A valid email address is required", err.Error()))
		return
	}

	tag, err := config.StoreDB.Exec(ctx,
		`INSERT INTO newsletter_subscribers (email, created_at)
		 VALUES ($1, now())
		 ON CONFLICT (email) DO NOTHING`,
		req.Email,
	)
	if err != nil {
		log.Printf("❌ Newsletter signup failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to subscribe"))
		return
	}

	// Welcome email only for first-time signups, and never on the request path
	if client := resend(); tag.RowsAffected() > 0 && client != nil {
		go func(email string) {
			if err := client.SendNewsletterWelcomeEmail(email); err != nil {
				log.Printf("⚠️ Failed to send welcome email to %s: %v", email, err)
			}
		}(req.Email)
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Subscribed successfully", gin.H{"email": req.Email}))
}
