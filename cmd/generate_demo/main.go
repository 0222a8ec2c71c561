// Command generate_demo creates a demo database holding one practice exam.
// Usage: go run cmd/generate_demo/main.go [-db path/to/demo.db]
package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/learningmate/examstore/internal/config"
	"github.com/learningmate/examstore/internal/demo"
	"github.com/learningmate/examstore/internal/entrypoint"
	"github.com/learningmate/examstore/internal/logger"
)

const defaultDemoDatabasePath = "./demo/demo.db"

func main() {
	dbPath := flag.String("db", defaultDemoDatabasePath, "path to the demo database file")
	flag.Parse()

	log.Printf("Generating demo database at %s...", *dbPath)

	// Delete existing demo database to start fresh
	if err := os.Remove(*dbPath); err != nil && !os.IsNotExist(err) {
		log.Fatalf("Failed to remove existing demo database: %v", err)
	}

	cfg := &config.Config{Database: config.Database{Path: *dbPath, LogLevel: "silent"}}
	app, err := entrypoint.NewApp(cfg, logger.New(config.Log{Level: "warn"}))
	if err != nil {
		log.Fatalf("Failed to create database: %v", err)
	}
	defer app.Close()

	summary, err := demo.Seed(context.Background(), app.Exams, app.DemoTopicCreators())
	if err != nil {
		log.Fatalf("Failed to seed demo content: %v", err)
	}

	log.Printf("Saved: %s (%d topics, %d questions)", summary.Exam.Title, summary.Topics, summary.Questions)
	log.Println("Demo database generated successfully!")
}
