package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookly-backend/internal/domains/book/model"
	"bookly-backend/internal/domains/book/service"
	"bookly-backend/internal/shared"
	"bookly-backend/internal/shared/response"
	"bookly-backend/internal/shared/utils"
)

type Handler struct {
	service service.ServiceInterface
}

func NewBookHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if model.HandleBookError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, books)
}

func (h *Handler) GetBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	b, err := h.service.GetBook(c.Request.Context(), id)
	if model.HandleBookError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	b, err := h.service.CreateBook(c.Request.Context(), req)
	if model.HandleBookError(c, err) {
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	b, err := h.service.UpdateBook(c.Request.Context(), id, req)
	if model.HandleBookError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	if model.HandleBookError(c, h.service.DeleteBook(c.Request.Context(), id)) {
		return
	}
	response.NoContent(c)
}

func bookID(c *gin.Context) (int64, bool) {
	id, ok := shared.ParseID(c.Param("id"))
	if !ok {
		model.HandleBookError(c, model.ErrInvalidBookID)
		return 0, false
	}
	return id, true
}
