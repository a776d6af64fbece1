package handlers

import (
	"errors"
	"net/http"

	request "shopsphere/internal/adapter/http/dto/request"
	response "shopsphere/internal/adapter/http/dto/response"
	"shopsphere/internal/usecase"
	"shopsphere/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidChatPayload = pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", "Message is required", http.StatusBadRequest)

// ChatHandler proxies shopper questions to the assistant gateway.
type ChatHandler struct {
	usecase usecase.IChatUseCase
}

func NewChatHandler(uc usecase.IChatUseCase) *ChatHandler {
	return &ChatHandler{usecase: uc}
}

func (h *ChatHandler) Ask(c *gin.Context) {
	var payload request.ChatRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidChatPayload.HTTPStatus, errInvalidChatPayload.ToHTTPError())
		return
	}

	reply, err := h.usecase.Ask(c.Request.Context(), payload.Message)
	if err != nil {
		appErr := mapChatError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromChatReply(reply))
}

func mapChatError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidChatMessage):
		return pkg.NewDomainErrorSimple("INVALID_CHAT_INPUT", "Message is required", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
