package main

import (
	"log"
	"net/http"

	"references-archive/config"
	"references-archive/handlers"
	"references-archive/middleware"
	"references-archive/repositories"
	"references-archive/seed"
	"references-archive/services"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	// Load seed dataset
	formatter := services.NewCitationFormatter()
	dataset, err := seed.Load(cfg.SeedFile, formatter.Format)
	if err != nil {
		logger.Fatal("failed to load seed dataset", zap.Error(err))
	}
	logger.Info("Seed dataset loaded",
		zap.Int("collections", len(dataset.Collections)),
		zap.Int("articles", len(dataset.Articles)))

	// Initialize repositories
	articleRepo := repositories.NewArticleRepository(dataset.Articles)
	collectionRepo := repositories.NewCollectionRepository(dataset.Collections)

	// Initialize services
	articleService := services.NewArticleService(articleRepo, collectionRepo, formatter, logger)
	collectionService := services.NewCollectionService(collectionRepo, articleRepo, logger)
	facetService := services.NewFacetService(articleRepo, collectionRepo, cfg.FacetDatasetsAll)

	// Initialize handlers
	articleHandler := handlers.NewArticleHandler(articleService)
	collectionHandler := handlers.NewCollectionHandler(collectionService)
	facetHandler := handlers.NewFacetHandler(facetService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Read routes
		articles := v1.Group("/articles")
		{
			articles.GET("", articleHandler.GetArticles)
			articles.GET("/:id", articleHandler.GetArticle)
			articles.GET("/:id/citations", articleHandler.GetCitations)
			articles.GET("/:id/download", articleHandler.Download)
		}
		v1.GET("/collections", collectionHandler.GetCollections)
		v1.GET("/facets", facetHandler.GetFacets)
		v1.GET("/scope", collectionHandler.GetScope)
		v1.PUT("/scope", collectionHandler.SetScope)

		// Mutating routes, refused when the server runs read-only
		admin := v1.Group("/")
		admin.Use(middleware.WriteGuard(cfg.ReadOnly))
		{
			admin.POST("/articles", articleHandler.CreateArticle)
			admin.DELETE("/articles/:id", articleHandler.DeleteArticle)
			admin.POST("/collections", collectionHandler.CreateCollection)
			admin.DELETE("/collections/:id", collectionHandler.DeleteCollection)
		}
	}

	// Start server
	logger.Info("Server starting", zap.String("port", cfg.HTTPPort), zap.Bool("read_only", cfg.ReadOnly))
	if err := http.ListenAndServe(":"+cfg.HTTPPort, router); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}
