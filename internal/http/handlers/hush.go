package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kozmossocial/kozmosv1-sub000/internal/http/middleware"
	"github.com/kozmossocial/kozmosv1-sub000/internal/hush"
)

type HushHandler struct {
	UC hush.HushUsecase
}

type hushTargetReq struct {
	UserID string `json:"user_id" binding:"required,uuid"`
}

func (r hushTargetReq) uuid() uuid.UUID {
	id, _ := uuid.Parse(r.UserID)
	return id
}

func (h *HushHandler) Create(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	var req hushTargetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	chat, err := h.UC.CreateWith(c.Request.Context(), actorID, req.uuid())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"chat_id": chat.ID})
}

func (h *HushHandler) Invite(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	chatID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req hushTargetReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	if err := h.UC.Invite(c.Request.Context(), actorID, chatID, req.uuid()); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HushHandler) RequestJoin(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	chatID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.UC.RequestJoin(c.Request.Context(), actorID, chatID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type acceptReq struct {
	Accept *bool `json:"accept" binding:"required"`
}

func (h *HushHandler) ResolveRequest(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	chatID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	var req acceptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	if err := h.UC.ResolveRequest(c.Request.Context(), actorID, chatID, memberID, *req.Accept); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HushHandler) RespondInvite(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	chatID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req acceptReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	if err := h.UC.RespondInvite(c.Request.Context(), actorID, chatID, *req.Accept); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HushHandler) Leave(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	chatID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	if err := h.UC.Leave(c.Request.Context(), actorID, chatID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *HushHandler) RemoveMember(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	chatID, ok := uuidParam(c, "id")
	if !ok {
		return
	}
	memberID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	if err := h.UC.RemoveMember(c.Request.Context(), actorID, chatID, memberID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type sendMessageReq struct {
	Content string `json:"content" binding:"required"`
}

func (h *HushHandler) SendMessage(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	chatID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req sendMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	msg, err := h.UC.SendMessage(c.Request.Context(), actorID, chatID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, msg)
}

func (h *HushHandler) ListMessages(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	chatID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	limit := 0
	if v := c.Query("limit"); v != "" {
		if x, err := strconv.Atoi(v); err == nil {
			limit = x
		}
	}

	msgs, err := h.UC.ListMessages(c.Request.Context(), actorID, chatID, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": msgs})
}

func (h *HushHandler) List(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	list, err := h.UC.List(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"chats":         list.Chats,
		"invites":       list.Invites,
		"join_requests": list.JoinRequests,
	})
}
