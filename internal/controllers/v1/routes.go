package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/pocketledger/backend/internal/analyzer"
	"github.com/pocketledger/backend/internal/httputil"
)

// Config holds the runtime configuration of the API handlers.
type Config struct {
	JWTSecret []byte           // Key for signing and verifying session tokens
	Analyzer  *analyzer.Client // Client for the external statement analysis service
	FontPath  string           // Path to the TTF font embedded into PDF exports
	AvatarDir string           // Directory avatar uploads are stored in
	AvatarURL string           // Public base URL under which avatars are served
}

var cfg Config

// AttachRoutes attaches the v1 API routes to the router group that is passed.
func AttachRoutes(conf Config, r *gin.RouterGroup) {
	cfg = conf

	// Public endpoints
	{
		r.OPTIONS("/register", httputil.OptionsPost)
		r.POST("/register", RegisterUser)
		r.OPTIONS("/login", httputil.OptionsPost)
		r.POST("/login", Login)
	}

	// Everything else requires a session
	authed := r.Group("", RequireAuth())

	authed.OPTIONS("/password", httputil.OptionsPatch)
	authed.PATCH("/password", UpdatePassword)

	RegisterExpenseRoutes(authed.Group("/expenses"))
	RegisterIncomeRoutes(authed.Group("/incomes"))
	RegisterCategoryRoutes(authed.Group("/categories"))
	RegisterProfileRoutes(authed.Group("/profile"))
	RegisterMatchRuleRoutes(authed.Group("/match-rules"))
	RegisterDashboardRoutes(authed.Group("/dashboard"))
	RegisterExportRoutes(authed.Group("/export"))
	RegisterSyncRoutes(authed.Group("/sync"))
}
