package database

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/learningmate/examstore/internal/entities"
)

// ConnectionProvider hands out one dedicated connection per call. The
// connection is released when fn returns, whatever the outcome.
type ConnectionProvider interface {
	Connection(ctx context.Context, fn func(conn *gorm.DB) error) error
}

type Database struct {
	DB  *gorm.DB
	log zerolog.Logger
}

type Option func(*options)

type options struct {
	logLevel logger.LogLevel
	log      zerolog.Logger
}

// WithLogLevel sets the level of gorm's SQL logger.
func WithLogLevel(level logger.LogLevel) Option {
	return func(o *options) { o.logLevel = level }
}

// WithLogger sets the logger used for lifecycle messages.
func WithLogger(log zerolog.Logger) Option {
	return func(o *options) { o.log = log }
}

func NewDatabase(dbPath string, opts ...Option) (*Database, error) {
	o := options{logLevel: logger.Warn, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: logger.Default.LogMode(o.logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	database := &Database{DB: db, log: o.log.With().Str("component", "database").Logger()}

	if err := database.Migrate(); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	database.log.Info().Str("path", dbPath).Msg("database initialized")

	return database, nil
}

// Migrate creates the exams table and the topic/question table pair of every
// skill. It is safe to run repeatedly.
func (d *Database) Migrate() error {
	if err := d.DB.AutoMigrate(&entities.Exam{}); err != nil {
		return fmt.Errorf("failed to migrate exams: %w", err)
	}
	for _, skill := range entities.Skills {
		if err := d.DB.Table(skill.TopicsTable()).AutoMigrate(&entities.Topic{}); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", skill.TopicsTable(), err)
		}
		if err := d.DB.Table(skill.QuestionsTable()).AutoMigrate(&entities.Question{}); err != nil {
			return fmt.Errorf("failed to migrate %s: %w", skill.QuestionsTable(), err)
		}
	}
	return nil
}

// Connection checks one connection out of the pool for the duration of fn.
// fn receives a fresh session bound to that connection, so successive
// statements inside fn do not share builder state.
func (d *Database) Connection(ctx context.Context, fn func(conn *gorm.DB) error) error {
	return d.DB.WithContext(ctx).Connection(func(tx *gorm.DB) error {
		return fn(tx.Session(&gorm.Session{NewDB: true}))
	})
}

// Ping verifies the database is reachable.
func (d *Database) Ping(ctx context.Context) error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (d *Database) Close() error {
	sqlDB, err := d.DB.DB()
	if err != nil {
		return err
	}
	d.log.Info().Msg("closing database")
	return sqlDB.Close()
}
