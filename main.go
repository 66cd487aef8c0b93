package main

import (
	"context"
	"log"
	"time"

	"github.com/solutiontech214/MindTune/config"
	"github.com/solutiontech214/MindTune/helpers"
	"github.com/solutiontech214/MindTune/middleware"
	"github.com/solutiontech214/MindTune/routes"
	"github.com/solutiontech214/MindTune/services"
	"github.com/solutiontech214/MindTune/storage"

	"github.com/gin-gonic/gin"
)

func main() {

	log.Println("Starting MindTune...")

	key := config.GenerateRandomKey()
	helpers.SetJWTKey(key)

	// Select the stores once at startup: Mongo when reachable, otherwise the
	// transient in-memory fallback (already logged by config).
	client := config.ConnectDB()
	store := storage.SelectCheckinStore(client)
	diaryStore := storage.SelectDiaryStore(client)
	if mongoStore, ok := store.(*storage.MongoCheckinStore); ok {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := mongoStore.EnsureIndexes(ctx); err != nil {
			log.Printf("WARNING: could not ensure check-in indexes: %v", err)
		}
		cancel()
	}

	checkins := services.NewCheckinService(store)
	diary := services.NewDiaryService(diaryStore)
	engine := services.NewRecommendationEngine(services.DefaultTracks())

	//Init gin router
	r := gin.Default()
	r.Use(middleware.RequestID())
	api := r.Group("/api")
	routes.SetupRoutes(api, checkins, diary, engine)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"service": "mindtune", "status": "ok"})
	})

	//Start the server
	if err := r.Run(config.Port()); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
