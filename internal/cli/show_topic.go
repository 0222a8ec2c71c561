package cli

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/learningmate/examstore/internal/config"
	"github.com/learningmate/examstore/internal/entities"
	"github.com/learningmate/examstore/internal/entrypoint"
	"github.com/learningmate/examstore/internal/logger"
)

type ShowTopicCommand struct {
	DatabasePath string
	Skill        string
	ID           string
}

func NewShowTopicCommand() *ShowTopicCommand {
	return &ShowTopicCommand{}
}

func (cmd *ShowTopicCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("show-topic", flag.ExitOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the database file")
	fs.StringVar(&cmd.Skill, "skill", string(entities.SkillListening), "Skill: listening, reading, writing or speaking")
	fs.StringVar(&cmd.ID, "id", "", "Topic ID (required)")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s show-topic [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print a topic with its questions as JSON.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.ID == "" {
		fs.Usage()
		return fmt.Errorf("id is required")
	}

	return nil
}

func (cmd *ShowTopicCommand) Run() error {
	skill, err := entities.ParseSkill(cmd.Skill)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(cmd.ID)
	if err != nil {
		return fmt.Errorf("invalid topic id: %w", err)
	}

	cfg := &config.Config{Database: config.Database{Path: cmd.DatabasePath, LogLevel: "silent"}}
	app, err := entrypoint.NewApp(cfg, logger.New(config.Log{Level: "error"}))
	if err != nil {
		return err
	}
	defer app.Close()

	res, err := app.Topics[skill].GetTopicWithQuestions(context.Background(), id)
	if err != nil {
		return err
	}
	topic, ok := res.Value()
	if !ok {
		return res.Err()
	}

	out, err := json.MarshalIndent(topic, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}
