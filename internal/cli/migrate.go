package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/learningmate/examstore/internal/config"
	"github.com/learningmate/examstore/internal/database"
	"github.com/learningmate/examstore/internal/logger"
)

type MigrateCommand struct {
	DatabasePath string
	Verbose      bool
}

func NewMigrateCommand() *MigrateCommand {
	return &MigrateCommand{}
}

func (cmd *MigrateCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Log every SQL statement")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s migrate [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create the exam and per-skill topic tables if they do not exist.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *MigrateCommand) Run() error {
	level := "warn"
	if cmd.Verbose {
		level = "info"
	}

	// NewDatabase migrates on open
	db, err := database.NewDatabase(cmd.DatabasePath, database.WithLogLevel(logger.GormLogLevel(level)))
	if err != nil {
		return err
	}
	defer db.Close()

	fmt.Printf("Database %s is up to date\n", cmd.DatabasePath)
	return nil
}
