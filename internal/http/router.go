package http

import (
	"github.com/gin-gonic/gin"

	"github.com/kozmossocial/kozmosv1-sub000/config"
	"github.com/kozmossocial/kozmosv1-sub000/internal/http/handlers"
	"github.com/kozmossocial/kozmosv1-sub000/internal/http/middleware"
)

// NewRouter wires the authenticated action routes onto a gin engine. All
// routes resolve the actor from the bearer token before reaching the
// engines.
func NewRouter(cfg *config.Config, userH *handlers.UserHandler, touchH *handlers.TouchHandler, hushH *handlers.HushHandler, directH *handlers.DirectHandler) *gin.Engine {
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	api := r.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg.JWT.Secret))

	api.GET("/me", userH.Me)
	api.GET("/users/:username", userH.ByUsername)

	api.POST("/touch/requests", touchH.Request)
	api.POST("/touch/requests/:id", touchH.Respond)
	api.GET("/touch", touchH.List)
	api.PUT("/touch/order", touchH.SetOrder)
	api.DELETE("/touch/:userId", touchH.Remove)

	api.POST("/hush", hushH.Create)
	api.GET("/hush", hushH.List)
	api.POST("/hush/:id/invite", hushH.Invite)
	api.POST("/hush/:id/invite/respond", hushH.RespondInvite)
	api.POST("/hush/:id/join", hushH.RequestJoin)
	api.POST("/hush/:id/requests/:userId", hushH.ResolveRequest)
	api.POST("/hush/:id/leave", hushH.Leave)
	api.DELETE("/hush/:id/members/:userId", hushH.RemoveMember)
	api.POST("/hush/:id/messages", hushH.SendMessage)
	api.GET("/hush/:id/messages", hushH.ListMessages)

	api.POST("/direct", directH.Open)
	api.GET("/direct", directH.List)
	api.POST("/direct/:id/messages", directH.SendMessage)
	api.GET("/direct/:id/messages", directH.ListMessages)
	api.PUT("/direct/order", directH.SetOrder)
	api.DELETE("/direct/:id", directH.Remove)

	return r
}
