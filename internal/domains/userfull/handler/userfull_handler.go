package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookly-backend/internal/domains/userfull/model"
	"bookly-backend/internal/domains/userfull/service"
	"bookly-backend/internal/shared"
	"bookly-backend/internal/shared/response"
)

type Handler struct {
	service service.ServiceInterface
}

func NewUserFullHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GetUserFull answers 200 whenever at least one store knows the id; either half may be null.
func (h *Handler) GetUserFull(c *gin.Context) {
	id := shared.UserID(strings.TrimSpace(c.Param("id")))

	full, err := h.service.GetUserFull(c.Request.Context(), id)
	if model.HandleUserFullError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, full)
}
