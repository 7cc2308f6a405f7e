package main

import (
	"fmt"
	"log"
	"net/http"

	"gamenight/backend/internal/config"
	"gamenight/backend/internal/database"
	"gamenight/backend/internal/engine"
	"gamenight/backend/internal/handler"

	"github.com/gin-gonic/gin"

	// Swagger imports
	_ "gamenight/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Gamenight API
// @version         1.0
// @description     Tracks a catalog of multiplayer games and who owns them, and answers which games a group can play together.
// @host            localhost:8080
// @BasePath        /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to the database
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	h := handler.New(engine.New(db))

	router := gin.Default()

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	// API v1 routes
	apiV1 := router.Group("/api/v1")
	{
		gameRoutes := apiV1.Group("/games")
		{
			gameRoutes.GET("", h.ListGames)
			gameRoutes.GET("/playable", h.ListPlayableGames) // Must be before /:id
			gameRoutes.GET("/:id", h.GetGameByID)
			gameRoutes.POST("", h.CreateGame)
			gameRoutes.DELETE("/:id", h.DeleteGame)

			gameRoutes.POST("/:id/owners", h.AddOwner)
			gameRoutes.DELETE("/:id/owners/:name", h.RemoveOwner)
		}
	}

	addr := ":" + cfg.Port
	fmt.Printf("Server is running on %s\n", addr)
	fmt.Printf("Swagger UI is available at http://localhost%s/swagger/index.html\n", addr)
	log.Fatal(router.Run(addr))
}
