package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kozmossocial/kozmosv1-sub000/internal/http/middleware"
	"github.com/kozmossocial/kozmosv1-sub000/internal/user"
)

type UserHandler struct {
	UC user.IdentityUsecase
}

func (h *UserHandler) Me(c *gin.Context) {
	actorID := middleware.MustUserID(c)

	profile, err := h.UC.GetProfile(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) ByUsername(c *gin.Context) {
	profile, err := h.UC.GetProfileByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}
