// Package interfaces documents the core abstractions used throughout the application.
//
// # Interface Categories
//
// ## Data Access Interfaces
//
//   - ConnectionProvider: One dedicated connection per unit of work (internal/database/database.go)
//   - TopicReader / TopicWriter / TopicStore: Per-skill topic persistence (internal/services/interfaces.go)
//   - ExamChecker / ExamStore: Exam persistence (internal/services/interfaces.go)
//
// ## Service Interfaces
//
//   - ExamsService, TopicsService: Use cases consumed by HTTP controllers (internal/http/stores.go)
//   - HealthChecker: Database reachability (internal/http/stores.go)
//   - ExamCreator, TopicCreator: Demo content seeding (internal/demo/content.go)
//
// # Adding a New Skill
//
//  1. Add the constant to internal/entities/skill.go and append it to Skills.
//
//  2. Nothing else is needed: Database.Migrate creates the <skill>_topics and
//     <skill>_topic_questions tables, entrypoint.NewApp builds a topic service
//     for it, and the :skill routes resolve it by name.
//
// # Adding a Store Implementation
//
// Implement the interface, then add a compile-time check to checks.go:
//
//	var _ services.TopicStore = (*mystore.Repository)(nil)
package interfaces
