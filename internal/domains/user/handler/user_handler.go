package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookly-backend/internal/domains/user/model"
	"bookly-backend/internal/domains/user/service"
	"bookly-backend/internal/shared"
	"bookly-backend/internal/shared/response"
	"bookly-backend/internal/shared/utils"
)

type Handler struct {
	service service.ServiceInterface
}

func NewUserHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GET /api/users
func (h *Handler) ListUsers(c *gin.Context) {
	users, err := h.service.ListUsers(c.Request.Context())
	if model.HandleUserError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, users)
}

// GET /api/users/:id
func (h *Handler) GetUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	u, err := h.service.GetUser(c.Request.Context(), id)
	if model.HandleUserError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, u)
}

// POST /api/users
func (h *Handler) CreateUser(c *gin.Context) {
	var req model.CreateUserRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	u, err := h.service.CreateUser(c.Request.Context(), req)
	if model.HandleUserError(c, err) {
		return
	}
	response.Success(c, http.StatusCreated, u)
}

// PUT /api/users/:id
func (h *Handler) UpdateUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	var req model.UpdateUserRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	u, err := h.service.UpdateUser(c.Request.Context(), id, req)
	if model.HandleUserError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, u)
}

// DELETE /api/users/:id
func (h *Handler) DeleteUser(c *gin.Context) {
	id, ok := userID(c)
	if !ok {
		return
	}

	if model.HandleUserError(c, h.service.DeleteUser(c.Request.Context(), id)) {
		return
	}
	response.NoContent(c)
}

func userID(c *gin.Context) (int64, bool) {
	id, ok := shared.ParseID(c.Param("id"))
	if !ok {
		model.HandleUserError(c, model.ErrInvalidUserID)
		return 0, false
	}
	return id, true
}
