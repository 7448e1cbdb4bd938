package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"spendly/internal/services"
	"spendly/internal/snapshot"
)

// SyncHandler handles push and pull of a user's data.
type SyncHandler struct {
	syncService services.SyncServicer
}

// NewSyncHandler creates a new SyncHandler.
func NewSyncHandler(syncService services.SyncServicer) *SyncHandler {
	return &SyncHandler{syncService: syncService}
}

// Push handles uploading local data.
// @Summary     Push local data
// @Description Upsert the given expenses, budgets, goals and profile for a user. Records are keyed by their id, so repeating a push is harmless. Omitted arrays leave remote data untouched.
// @Tags        sync
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body snapshot.PushRequest true "Local data"
// @Success     200 {object} snapshot.PushResponse "Data synced"
// @Failure     400 {object} ErrorResponse "Missing user id or invalid record"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "User id does not match session"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sync [post]
func (h *SyncHandler) Push(c *gin.Context) {
	var req snapshot.PushRequest
	invalid, err := bindJSON(c, &req)
	if err != nil {
		respondWithError(c, err)
		return
	}

	userID, err := resolveUserID(c, req.UserID)
	if err != nil {
		respondWithError(c, err)
		return
	}
	if invalid != nil {
		respondWithError(c, invalid)
		return
	}
	req.UserID = userID

	synced, err := h.syncService.Push(c.Request.Context(), &req, c.ClientIP())
	if err != nil {
		respondWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot.PushResponse{
		Success: true,
		Message: "Data synced successfully",
		Synced:  *synced,
	})
}

// Pull handles downloading remote data.
// @Summary     Pull remote data
// @Description Return all of a user's expenses, budgets, goals and profile in local shape. Budget spent is always 0; profile is null when never saved.
// @Tags        sync
// @Produce     json
// @Security    BearerAuth
// @Param       userId query string false "User ID (required unless bound by session)"
// @Success     200 {object} snapshot.PullResponse "User data"
// @Failure     400 {object} ErrorResponse "Missing user id"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "User id does not match session"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /sync [get]
func (h *SyncHandler) Pull(c *gin.Context) {
	userID, err := resolveUserID(c, c.Query("userId"))
	if err != nil {
		respondWithError(c, err)
		return
	}

	data, err := h.syncService.Pull(c.Request.Context(), userID, c.ClientIP())
	if err != nil {
		respondWithError(c, err)
		return
	}
	data.Normalize()

	c.JSON(http.StatusOK, snapshot.PullResponse{Success: true, Data: *data})
}
