package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/portfolio/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/portfolio/internal/usecase/contract"
)

// ContactHandler serves the contact form inbox.
type ContactHandler struct {
	messageUsecase usecasecontract.IMessageUseCase
}

func NewContactHandler(messageUsecase usecasecontract.IMessageUseCase) *ContactHandler {
	return &ContactHandler{messageUsecase: messageUsecase}
}

func (h *ContactHandler) SubmitMessage(c *gin.Context) {
	var req dto.SubmitMessageRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}
	msg, err := h.messageUsecase.SubmitMessage(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		HandleUsecaseError(c, err, "Failed to send message")
		return
	}
	SuccessHandler(c, http.StatusCreated, msg)
}

func (h *ContactHandler) GetMessages(c *gin.Context) {
	messages, err := h.messageUsecase.GetMessages(c.Request.Context())
	if err != nil {
		HandleUsecaseError(c, err, "Failed to retrieve messages")
		return
	}
	SuccessHandler(c, http.StatusOK, dto.MessageListResponse{Messages: messages})
}

func (h *ContactHandler) MarkAsRead(c *gin.Context) {
	if err := h.messageUsecase.MarkAsRead(c.Request.Context(), c.Param("id")); err != nil {
		HandleUsecaseError(c, err, "Failed to update message")
		return
	}
	MessageHandler(c, http.StatusOK, "Message marked as read")
}

func (h *ContactHandler) DeleteMessage(c *gin.Context) {
	if err := h.messageUsecase.DeleteMessage(c.Request.Context(), c.Param("id")); err != nil {
		HandleUsecaseError(c, err, "Failed to delete message")
		return
	}
	MessageHandler(c, http.StatusOK, "Message deleted successfully")
}
