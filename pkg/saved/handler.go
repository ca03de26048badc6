package saved

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
	"github.com/mcpmarket/marketplace-manager/internal/handler"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
)

func NewHandler(savedService *Service) Handler {
	return Handler{savedService}
}

type Handler struct {
	savedService *Service
}

type savedServerResponse struct {
	ID      uuid.UUID     `json:"id"`
	SavedAt time.Time     `json:"savedAt"`
	Server  *model.Server `json:"server"`
}

// List returns the principal's saved listings, most recent first.
func (h Handler) List(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	saved, err := h.savedService.List(c.Request.Context(), u.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response := make([]savedServerResponse, len(saved))
	for i, s := range saved {
		response[i] = savedServerResponse{
			ID:      s.ID,
			SavedAt: s.CreatedAt,
			Server:  s.Server,
		}
	}

	c.JSON(http.StatusOK, response)
}

type SaveServerRequest struct {
	ServerID uuid.UUID `json:"serverId" binding:"required"`
}

func (h Handler) Save(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request SaveServerRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	saved, err := h.savedService.Save(c.Request.Context(), u.ID, request.ServerID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusCreated, saved)
}

func (h Handler) Delete(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	serverID, err := uuid.Parse(c.Query("serverId"))
	if err != nil {
		_ = c.Error(errdef.NewBadRequest("serverId must be a valid uuid"))
		return
	}

	if err := h.savedService.Delete(c.Request.Context(), u.ID, serverID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
