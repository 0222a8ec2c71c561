package interfaces

// This file contains compile-time interface implementation checks.
// These ensure that concrete types satisfy their interfaces at compile time,
// catching missing methods before runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/learningmate/examstore/internal/database"
	"github.com/learningmate/examstore/internal/database/exams"
	"github.com/learningmate/examstore/internal/database/topics"
	"github.com/learningmate/examstore/internal/demo"
	"github.com/learningmate/examstore/internal/http"
	"github.com/learningmate/examstore/internal/services"
)

// =============================================================================
// Data Access Layer
// =============================================================================

// ConnectionProvider implementations
var _ database.ConnectionProvider = (*database.Database)(nil)

// TopicStore implementations
var _ services.TopicStore = (*topics.Repository)(nil)

// ExamStore implementations
var _ services.ExamStore = (*exams.Repository)(nil)
var _ services.ExamChecker = (*exams.Repository)(nil)

// =============================================================================
// Service Layer
// =============================================================================

// HTTP-facing services
var _ http.ExamsService = (*services.ExamService)(nil)
var _ http.TopicsService = (*services.TopicService)(nil)
var _ http.HealthChecker = (*database.Database)(nil)

// Demo seeding
var _ demo.ExamCreator = (*services.ExamService)(nil)
var _ demo.TopicCreator = (*services.TopicService)(nil)
