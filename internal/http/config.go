package http

import (
	"github.com/rs/zerolog"

	"github.com/learningmate/examstore/internal/demo"
)

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Database HealthChecker
	Exams    ExamsService
	Topics   []TopicsService

	// Demo mode blocks writes when enabled (optional)
	DemoMiddleware *demo.Middleware

	// Request and failure logging
	Logger zerolog.Logger

	// Application info
	Version string
}
