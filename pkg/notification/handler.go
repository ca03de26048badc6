package notification

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/mcpmarket/marketplace-manager/internal/errdef"
	"github.com/mcpmarket/marketplace-manager/internal/handler"
	"github.com/mcpmarket/marketplace-manager/pkg/model"
)

func NewHandler(notificationService *Service, broker broker) Handler {
	return Handler{notificationService, broker}
}

type Handler struct {
	notificationService *Service
	broker              broker
}

type broker interface {
	Subscribe(user model.User) chan model.Notification
	Unsubscribe(id uuid.UUID, channel chan model.Notification)
}

func (h Handler) List(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	notifications, err := h.notificationService.List(c.Request.Context(), u.ID)
	if err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, notifications)
}

type MarkReadRequest struct {
	ID   uuid.UUID `json:"id" binding:"required"`
	Read *bool     `json:"read" binding:"required"`
}

func (h Handler) MarkRead(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	var request MarkReadRequest
	if err := handler.DataBinder(c, &request); err != nil {
		_ = c.Error(err)
		return
	}

	if err := h.notificationService.MarkRead(c.Request.Context(), request.ID, u.ID, *request.Read); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h Handler) Delete(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	id, err := uuid.Parse(c.Query("id"))
	if err != nil {
		_ = c.Error(errdef.NewBadRequest("id must be a valid uuid"))
		return
	}

	if err := h.notificationService.Delete(c.Request.Context(), id, u.ID); err != nil {
		_ = c.Error(err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// Subscribe streams notifications to the client as server-sent events until
// the client disconnects.
func (h Handler) Subscribe(c *gin.Context) {
	u, err := handler.GetUserFromContext(c)
	if err != nil {
		_ = c.Error(err)
		return
	}

	stream := h.broker.Subscribe(*u)

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("Transfer-Encoding", "chunked")

	go func() {
		<-c.Request.Context().Done()
		h.broker.Unsubscribe(u.ID, stream)
	}()

	c.Stream(func(w io.Writer) bool {
		notification, ok := <-stream
		if !ok {
			return false
		}
		payload, err := json.Marshal(notification)
		if err != nil {
			return false
		}
		c.SSEvent(notification.Type, string(payload))
		return true
	})
}
