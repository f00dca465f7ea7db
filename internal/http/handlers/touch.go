package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kozmossocial/kozmosv1-sub000/internal/http/middleware"
	"github.com/kozmossocial/kozmosv1-sub000/internal/touch"
)

type TouchHandler struct {
	UC touch.TouchUsecase
}

type touchRequestReq struct {
	Username string `json:"username" binding:"required"`
}

func (h *TouchHandler) Request(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	var req touchRequestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	rel, err := h.UC.Request(c.Request.Context(), actorID, req.Username)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"relation_id": rel.ID, "status": rel.Status})
}

type touchRespondReq struct {
	Accept *bool `json:"accept" binding:"required"`
}

func (h *TouchHandler) Respond(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	relationID, ok := uuidParam(c, "id")
	if !ok {
		return
	}

	var req touchRespondReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	rel, err := h.UC.Respond(c.Request.Context(), actorID, relationID, *req.Accept)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"relation_id": rel.ID, "status": rel.Status})
}

func (h *TouchHandler) Remove(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	targetID, ok := uuidParam(c, "userId")
	if !ok {
		return
	}

	if err := h.UC.Remove(c.Request.Context(), actorID, targetID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TouchHandler) List(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	list, err := h.UC.List(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"in_touch": list.InTouch, "incoming": list.Incoming})
}

type touchSetOrderReq struct {
	UserIDs []string `json:"user_ids"`
}

func (h *TouchHandler) SetOrder(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	var req touchSetOrderReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body", "error": err.Error()})
		return
	}

	ids := make([]uuid.UUID, 0, len(req.UserIDs))
	for _, raw := range req.UserIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid user id", "error": raw})
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
