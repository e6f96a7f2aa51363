package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Titanium1971/artimon-backend/internal/domain"
	"github.com/Titanium1971/artimon-backend/internal/logger"
	"github.com/Titanium1971/artimon-backend/internal/middleware"
	"github.com/Titanium1971/artimon-backend/internal/service"
	"github.com/Titanium1971/artimon-backend/internal/validator"
)

// ContactHandler handles contact-form submissions.
type ContactHandler struct {
	contact   service.ContactServiceInterface
	validator *validator.Validator
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(contact service.ContactServiceInterface, v *validator.Validator) *ContactHandler {
	return &ContactHandler{
		contact:   contact,
		validator: v,
	}
}

// Submit handles POST /api/blog/contact. The message is persisted before
// any mail is attempted; a mail failure returns 500 but the message is
// never lost.
func (h *ContactHandler) Submit(c *gin.Context) {
	var input domain.ContactCreate
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.validator.ValidateContactCreate(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	msg, err := h.contact.Submit(c.Request.Context(), &input)
	if err != nil {
		logger.Error("Failed to store contact message",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store contact message"})
		return
	}

	if msg.EmailError != nil {
		// Saved locally with the failure annotation.
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "message saved but notification failed",
			"id":    msg.ID,
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "message sent", "id": msg.ID})
}

// AdminList handles GET /api/admin/contact
func (h *ContactHandler) AdminList(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	messages, err := h.contact.List(c.Request.Context(), limit, offset)
	if err != nil {
		logger.Error("Failed to list contact messages",
			slog.String("request_id", middleware.GetRequestID(c)),
			slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list contact messages"})
		return
	}

	c.JSON(http.StatusOK, messages)
}
