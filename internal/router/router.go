// Package router assembles the HTTP API: services, handlers, middleware and
// routes over a single record store.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "ledger/internal/docs" // Import swagger docs
	"ledger/internal/events"
	"ledger/internal/handlers"
	"ledger/internal/middleware"
	"ledger/internal/services"
	"ledger/internal/store"
)

// Deps are the collaborators the API is built from.
type Deps struct {
	Store     *store.Store
	Publisher events.Publisher
	JWTSecret string
}

// New builds the Gin engine serving the ledger API.
func New(deps Deps) *gin.Engine {
	publisher := deps.Publisher
	if publisher == nil {
		publisher = events.NopPublisher{}
	}

	// Services
	categoryService := services.NewCategoryService(deps.Store)
	budgetService := services.NewBudgetService(deps.Store, publisher)
	objectiveService := services.NewObjectiveService(deps.Store, publisher)
	auditService := services.NewAuditService(deps.Store)

	// Handlers
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)
	budgetHandler := handlers.NewBudgetHandler(budgetService, auditService)
	objectiveHandler := handlers.NewObjectiveHandler(objectiveService, auditService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())
	router.Use(cors())

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	v1.Use(middleware.AuthMiddleware(deps.JWTSecret))

	categories := v1.Group("/categories")
	categories.POST("", categoryHandler.CreateCategory)
	categories.GET("", categoryHandler.GetCategories)
	categories.GET("/:id", categoryHandler.GetCategory)
	categories.PUT("/:id", categoryHandler.UpdateCategory)
	categories.DELETE("/:id", categoryHandler.DeleteCategory)

	budgets := v1.Group("/budgets")
	budgets.GET("", budgetHandler.ListBudgets)
	budgets.DELETE("", budgetHandler.DeleteBudgets)
	budgets.PUT("/:month/:category_id", budgetHandler.UpsertBudget)
	budgets.DELETE("/:month/:category_id", budgetHandler.DeleteBudget)
	budgets.POST("/:month/copy-from/:source_month", budgetHandler.CopyBudgets)

	objectives := v1.Group("/objectives")
	objectives.POST("", objectiveHandler.CreateObjective)
	objectives.GET("", objectiveHandler.GetObjectives)
	objectives.GET("/:id", objectiveHandler.GetObjective)
	objectives.PATCH("/:id", objectiveHandler.UpdateObjective)
	objectives.DELETE("/:id", objectiveHandler.ArchiveObjective)
	objectives.POST("/:id/complete", objectiveHandler.CompleteObjective)

	return router
}

func cors() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	}
}
