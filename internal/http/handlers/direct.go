package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kozmossocial/kozmosv1-sub000/internal/direct"
	"github.com/kozmossocial/kozmosv1-sub000/internal/http/middleware"
)

type DirectHandler struct {
	UC direct.DirectUsecase
}

type openChannelReq struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

func (h *DirectHandler) Open(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	var req openChannelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}
	targetID, _ := uuid.Parse(req.UserID)

	ch, err := h.UC.OpenChannel(c.Request.Context(), actorID, targetID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, ch)
}

func (h *DirectHandler) List(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	channels, err := h.UC.ListChannels(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": channels})
}

func (h *DirectHandler) SendMessage(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	channelID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	msg, err := h.UC.SendMessage(c.Request.Context(), actorID, channelID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *DirectHandler) ListMessages(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	channelID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		if x, err := strconv.Atoi(v); err == nil {
			limit = x
		}
	}

	msgs, err := h.UC.ListMessages(c.Request.Context(), actorID, channelID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": msgs})
}

func (h *DirectHandler) Remove(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	channelID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.UC.Remove(c.Request.Context(), actorID, channelID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type channelOrderReq struct {
	ChannelIDs []string `json:"channel_ids"`
}

func (h *DirectHandler) SetOrder(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	var req channelOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	ids := make([]uuid.UUID, 0, len(req.ChannelIDs))
	for _, raw := range req.ChannelIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid channel id", "error": raw})
			return
		}
		ids = append(ids, id)
	}

	if err := h.UC.SetOrder(c.Request.Context(), actorID, ids); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
