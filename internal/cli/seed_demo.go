package cli

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/learningmate/examstore/internal/config"
	"github.com/learningmate/examstore/internal/demo"
	"github.com/learningmate/examstore/internal/entrypoint"
	"github.com/learningmate/examstore/internal/logger"
)

type SeedDemoCommand struct {
	DatabasePath string
	Fresh        bool
	Verbose      bool
}

func NewSeedDemoCommand() *SeedDemoCommand {
	return &SeedDemoCommand{}
}

func (cmd *SeedDemoCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("seed-demo", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.BoolVar(&cmd.Fresh, "fresh", false, "Delete the database file before seeding")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Enable debug logging")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s seed-demo [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Store a practice exam with sample topics for every skill.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s seed-demo -db ./demo.db -fresh\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *SeedDemoCommand) Run() error {
	if cmd.Fresh {
		if err := os.Remove(cmd.DatabasePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing database: %w", err)
		}
	}

	logCfg := config.Log{Level: "warn"}
	if cmd.Verbose {
		logCfg.Level = "debug"
	}
	log := logger.New(logCfg)

	cfg := &config.Config{
		Database: config.Database{Path: cmd.DatabasePath, LogLevel: "silent"},
		Log:      logCfg,
	}
	app, err := entrypoint.NewApp(cfg, log)
	if err != nil {
		return err
	}
	defer app.Close()

	summary, err := demo.Seed(context.Background(), app.Exams, app.DemoTopicCreators())
	if err != nil {
		return err
	}

	fmt.Printf("Seeded exam %q (%s): %d topics, %d questions\n",
		summary.Exam.Title, summary.Exam.ID, summary.Topics, summary.Questions)
	return nil
}
