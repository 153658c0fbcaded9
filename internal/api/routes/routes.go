package routes

import (
	"net/http"

	"afl-predictions-backend/internal/api/handlers"
	"afl-predictions-backend/internal/api/middleware"
	"afl-predictions-backend/internal/auth"
	"afl-predictions-backend/internal/config"
	"afl-predictions-backend/internal/repository"
	"afl-predictions-backend/internal/service"
	"afl-predictions-backend/pkg/types"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, authService *auth.AuthService) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Timeout(cfg.DatabaseQueryTimeout))

	// Initialize validator
	validator := service.NewValidator()

	// Initialize repositories
	playerRepo := repository.NewPlayerRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	roundRepo := repository.NewRoundRepository(db)
	gameRepo := repository.NewGameRepository(db)
	predictionRepo := repository.NewPredictionRepository(db)
	ladderRepo := repository.NewLadderPredictionRepository(db)

	// Initialize services
	playerService := service.NewPlayerService(playerRepo, validator)
	teamService := service.NewTeamService(teamRepo)
	gameService := service.NewGameService(roundRepo, gameRepo)
	predictionService := service.NewPredictionService(predictionRepo, gameRepo, validator)
	ladderService := service.NewLadderService(ladderRepo, teamRepo, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := auth.NewAuthHandler(authService, playerService)
	authMiddleware := auth.NewAuthMiddleware(authService)
	teamHandler := handlers.NewTeamHandler(teamService)
	gameHandler := handlers.NewGameHandler(gameService)
	predictionHandler := handlers.NewPredictionHandler(predictionService)
	ladderHandler := handlers.NewLadderHandler(ladderService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	if !cfg.IsProduction() {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := router.Group(cfg.APIBasePath)

	// Session routes are reachable without a session
	api.POST("/auth/login", authHandler.Login)
	api.POST("/auth/logout", authHandler.Logout)
	api.GET("/check-session", authHandler.CheckSession)

	// Everything else requires a logged-in player
	protected := api.Group("")
	protected.Use(authMiddleware.RequireSession())
	{
		protected.GET("/teams", teamHandler.GetTeams)

		games := protected.Group("/games")
		{
			games.GET("/current-round", gameHandler.GetCurrentRound)
			games.GET("/round/:roundNumber", gameHandler.GetGamesForRound)
		}

		predictions := protected.Group("/predictions")
		{
			predictions.POST("", predictionHandler.SubmitPrediction)
			predictions.GET("/stats", predictionHandler.GetPlayerStats)
		}
		protected.GET("/has-submitted", predictionHandler.HasSubmitted)

		ladder := protected.Group("/ladder-predictions")
		{
			ladder.POST("", ladderHandler.SubmitLadderPrediction)
			ladder.GET("/round/:roundNumber", ladderHandler.GetLadderPredictions)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, types.ErrorResponse{Error: "Endpoint not found"})
	})

	return router
}
