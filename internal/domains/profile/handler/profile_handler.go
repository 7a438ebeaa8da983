package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"bookly-backend/internal/domains/profile/model"
	"bookly-backend/internal/domains/profile/service"
	"bookly-backend/internal/shared"
	"bookly-backend/internal/shared/response"
	"bookly-backend/internal/shared/utils"
)

type Handler struct {
	service service.ServiceInterface
}

func NewProfileHandler(service service.ServiceInterface) *Handler {
	return &Handler{service: service}
}

// GET /api/profiles
func (h *Handler) ListProfiles(c *gin.Context) {
	profiles, err := h.service.ListProfiles(c.Request.Context())
	if model.HandleProfileError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, profiles)
}

// GET /api/profiles/:userId
func (h *Handler) GetProfile(c *gin.Context) {
	p, err := h.service.GetProfile(c.Request.Context(), userID(c))
	if model.HandleProfileError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, p)
}

// POST /api/profiles
func (h *Handler) CreateProfile(c *gin.Context) {
	var req model.CreateProfileRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.BadRequest(c, "invalid request body: userId must be a string or an integer")
		return
	}

	p, err := h.service.CreateProfile(c.Request.Context(), req)
	if model.HandleProfileError(c, err) {
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// PUT /api/profiles/:userId
func (h *Handler) UpdateProfile(c *gin.Context) {
	var req model.UpdateProfileRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	p, err := h.service.UpdateProfile(c.Request.Context(), userID(c), req)
	if model.HandleProfileError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, p)
}

// DELETE /api/profiles/:userId
func (h *Handler) DeleteProfile(c *gin.Context) {
	if model.HandleProfileError(c, h.service.DeleteProfile(c.Request.Context(), userID(c))) {
		return
	}
	response.NoContent(c)
}

// POST /api/profiles/:userId/history
func (h *Handler) AddHistoryEntry(c *gin.Context) {
	var req model.HistoryEntryRequest
	if err := utils.BindJSON(c, &req); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	p, err := h.service.AddHistoryEntry(c.Request.Context(), userID(c), req)
	if model.HandleProfileError(c, err) {
		return
	}
	response.Success(c, http.StatusCreated, p)
}

// PUT /api/profiles/:userId/history/:bookId
func (h *Handler) UpdateHistoryEntry(c *gin.Context) {
	var patch model.HistoryPatch
	if err := utils.BindJSON(c, &patch); err != nil {
		response.BadRequest(c, "invalid request body")
		return
	}

	p, err := h.service.UpdateHistoryEntry(c.Request.Context(), userID(c), c.Param("bookId"), patch)
	if model.HandleProfileError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, p)
}

// DELETE /api/profiles/:userId/history/:bookId
func (h *Handler) RemoveHistoryEntry(c *gin.Context) {
	p, err := h.service.RemoveHistoryEntry(c.Request.Context(), userID(c), c.Param("bookId"))
	if model.HandleProfileError(c, err) {
		return
	}
	response.Success(c, http.StatusOK, p)
}

func userID(c *gin.Context) shared.UserID {
	return shared.UserID(strings.TrimSpace(c.Param("userId")))
}
