package messages

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/FACorreiaa/influencer-hub/internal/app/handlers"
	"github.com/FACorreiaa/influencer-hub/internal/app/models"
	"github.com/FACorreiaa/influencer-hub/internal/app/pages"
	"github.com/FACorreiaa/influencer-hub/internal/pkg/htmx"
)

const (
	pageTitle = "Messages - Influencer Hub"
	navName   = "Messages"

	listTarget = "conversation-list"

	emptyMessageError = "Message cannot be empty"
)

type Handler struct {
	*handlers.BaseHandler
	service Service
}

func NewHandler(service Service, logger *zap.Logger) *Handler {
	return &Handler{
		BaseHandler: handlers.NewBaseHandler(logger),
		service:     service,
	}
}

// buildView loads the filtered inbox and, when conversationID is set, the
// selected thread.
func (h *Handler) buildView(c *gin.Context, query, conversationID string) (pages.MessagesView, error) {
	ctx := c.Request.Context()
	list, err := h.service.Conversations(ctx, query)
	if err != nil {
		return pages.MessagesView{}, err
	}
	v := pages.MessagesView{Query: query, Conversations: list}
	if conversationID == "" {
		return v, nil
	}

	conversation, thread, err := h.service.Thread(ctx, conversationID)
	if err != nil {
		return pages.MessagesView{}, err
	}
	v.Selected = &conversation
	v.Thread = pages.ThreadView{Conversation: conversation, Messages: thread}
	return v, nil
}

func (h *Handler) ShowMessages(c *gin.Context) {
	v, err := h.buildView(c, c.Query("q"), c.Query("conversation"))
	if err != nil {
		h.RenderError(c, err, "Conversation not found")
		return
	}

	if htmx.IsHTMXRequest(c.Request) && htmx.Target(c.Request) == listTarget {
		h.Render(c, http.StatusOK, pages.ConversationList(v))
		return
	}
	h.RenderPage(c, pageTitle, navName, pages.MessagesPage(v))
}

// SendMessage validates the composed message and re-renders the thread with
// an empty input.
func (h *Handler) SendMessage(c *gin.Context) {
	id := c.Param("id")
	sendErr := h.service.Send(c.Request.Context(), id, c.PostForm("message"))
	if sendErr != nil && !errors.Is(sendErr, models.ErrValidation) {
		h.RenderError(c, sendErr, "Conversation not found")
		return
	}

	if sendErr == nil && !htmx.IsHTMXRequest(c.Request) {
		c.Redirect(http.StatusSeeOther, "/messages?conversation="+id)
		return
	}

	v, err := h.buildView(c, "", id)
	if err != nil {
		h.RenderError(c, err, "Conversation not found")
		return
	}
	status := http.StatusOK
	if sendErr != nil {
		status = http.StatusBadRequest
		v.Thread.Error = validationMessage(sendErr)
	}

	if htmx.IsHTMXRequest(c.Request) {
		h.Render(c, status, pages.Thread(v.Thread))
		return
	}
	h.RenderPageStatus(c, status, pageTitle, navName, pages.MessagesPage(v))
}

func validationMessage(err error) string {
	if errors.Is(err, ErrMessageTooLong) {
		return fmt.Sprintf("Message cannot be longer than %d characters", MaxMessageLength)
	}
	return emptyMessageError
}

func (h *Handler) APIConversations(c *gin.Context) {
	list, err := h.service.Conversations(c.Request.Context(), c.Query("q"))
	if err != nil {
		h.JSONError(c, err, "Failed to load conversations")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"conversations": list,
		"count":         len(list),
	})
}

func (h *Handler) APIMessages(c *gin.Context) {
	conversation, thread, err := h.service.Thread(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.JSONError(c, err, "Conversation not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"conversation": conversation,
		"messages":     thread,
	})
}
