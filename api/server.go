package api

import (
	"net/http"

	"catwallpaper/config"
	"catwallpaper/generation"
	"catwallpaper/storage"
	"catwallpaper/types"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// Deps holds everything the routes need
type Deps struct {
	Assets        *storage.Assets
	Generator     generation.Generator
	DefaultPrompt string
	Logger        zerolog.Logger
}

// NewRouter constructs a Gin engine with registered routes.
func NewRouter(deps Deps) *gin.Engine {
	if deps.DefaultPrompt == "" {
		deps.DefaultPrompt = config.DefaultPrompt
	}
	if deps.Generator == nil {
		deps.Generator = generation.EchoGenerator{}
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(deps.Logger))
	r.MaxMultipartMemory = 8 << 20

	// Register resource routers
	RegisterGenerationRoutes(r, deps)
	RegisterHealthRoutes(r)

	// Generated assets
	r.Static(config.StaticPrefix, deps.Assets.Root())
	return r
}

// RegisterHealthRoutes registers the liveness endpoint.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET(config.HealthPath, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}

// respondWithError aborts the request with a {"detail": ...} body
func respondWithError(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, types.ErrorResponse{Detail: detail})
}
