package http

import (
	"github.com/gin-gonic/gin"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(RequestLogger(cfg.Logger.With().Str("component", "http").Logger()))
	router.Use(gin.Recovery())

	// Apply demo mode middleware if enabled
	if cfg.DemoMiddleware != nil && cfg.DemoMiddleware.IsEnabled() {
		router.Use(cfg.DemoMiddleware.Handler())
	}

	health := NewHealthController(cfg.Database, cfg.Version)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	api := router.Group("/api/v1")

	// Exams API endpoints
	if cfg.Exams != nil {
		examsController := NewExamsController(cfg.Exams, cfg.Logger)
		api.GET("/exams", examsController.ListExams)
		api.POST("/exams", examsController.CreateExam)
		api.GET("/exams/:id", examsController.GetExam)
		api.GET("/exams/:id/:skill", examsController.GetExamSkillTopics)
	}

	// Topics API endpoints, one service per skill
	if len(cfg.Topics) > 0 {
		topicsController := NewTopicsController(cfg.Topics, cfg.Logger)
		api.POST("/topics/:skill", topicsController.CreateTopic)
		api.GET("/topics/:skill/:id", topicsController.GetTopic)
		api.GET("/topics/:skill/:id/questions", topicsController.GetTopicWithQuestions)
	}

	return router
}
