package chat_controller

import (
	"log"
	"net/http"

	"github.com/JK-asthetic/SmartStoreFront/agents"
	"github.com/JK-asthetic/SmartStoreFront/models"
	"github.com/gin-gonic/gin"
)

var agentService *agents.Service

// Init wires the agent service used by the chat endpoint. Call once at startup.
func Init(service *agents.Service) {
	agentService = service
}

// Chat godoc
// @Summary Send a chat message
// @Description Route a shopper message through the assistant. The reply may carry product suggestions, order summaries, and a filter command for the product page.
// @Tags Chat
// @Accept json
// @Produce json
// @Param message body models.ChatRequest true "Chat payload"
// @Success 200 {object} models.ApiResponse "Reply generated"
// @Failure 400 {object} models.ApiResponse "Validation error"
// @Failure 500 {object} models.ApiResponse "Internal server error"
// @Failure 503 {object} models.ApiResponse "Assistant not available"
// @Router /chat [post]
func Chat(c *gin.Context) {
	if agentService == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Assistant is not available"))
		return
	}

	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ValidationErrorResponse(c, "Invalid chat payload", err.Error()))
		return
	}

	reply, err := agentService.Process(c.Request.Context(), req.UserID, req.Message)
	if err != nil {
		log.Printf("❌ Chat processing failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to process message"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Reply generated", reply))
}
