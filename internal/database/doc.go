// Package database provides the data access layer for exam content.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, table bootstrap, ConnectionProvider
//	├── topics/          # Per-skill topic and question operations, join hydration
//	└── exams/           # Exam existence, creation and overviews across skills
//
// # Connections
//
// Repositories never hold a *gorm.DB directly. They receive a
// ConnectionProvider and acquire one dedicated connection per method call:
//
//	err := provider.Connection(ctx, func(conn *gorm.DB) error {
//		return conn.Raw(query, sql.Named("id", id)).Scan(&topic).Error
//	})
//
// The connection goes back to the pool when the callback returns, on every
// path. *Database is the production ConnectionProvider.
//
// # Results
//
// Every repository method returns (result.Result[T], error). An Err result
// means the operation ran and logically failed (not found, no rows written).
// A non-nil error means it could not run (driver or connection fault) and is
// left for the caller to handle.
//
// # Usage
//
//	db, err := database.NewDatabase("./exams.db")
//
//	listening := topics.NewRepository(db, entities.SkillListening, log)
//	examsRepo := exams.NewRepository(db, log)
//
//	res, err := listening.GetTopicWithQuestionsByID(ctx, id)
//
// # Adding a New Skill
//
//  1. Add the constant to entities.Skill and to entities.Skills
//  2. Database.Migrate picks the new table pair up automatically
//  3. entrypoint.NewApp builds its repository and service from the same list
package database
