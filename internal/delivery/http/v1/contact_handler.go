package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/internal/domain"
	"go-portfolio-backend/pkg/apperror"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the message routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	public.POST("/messages", handler.SubmitMessage)
}

// SubmitMessage accepts a contact form submission, re-validates it and
// persists it. Honeypot traffic gets an empty 204 so bots cannot tell
// they were detected.
func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	meta := domain.RequestMeta{
		IP:        c.ClientIP(),
		UserAgent: c.GetHeader("User-Agent"),
	}

	msg, err := h.contactUC.Submit(c.Request.Context(), &req, meta)
	if err != nil {
		if errors.Is(err, domain.ErrBotDetected) {
			c.Status(http.StatusNoContent)
			return
		}
		var invalid *domain.InvalidSubmissionError
		if errors.As(err, &invalid) {
			response.Error(c, http.StatusBadRequest, "Validation failed", invalid.Violations)
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to store message. Please try again later.", err))
		return
	}

	response.Success(c, http.StatusCreated, "Your message has been sent successfully!", gin.H{
		"id": msg.ID,
	})
}
