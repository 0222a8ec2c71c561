package config

// DefaultDatabasePath is the default path for the exam content database
const DefaultDatabasePath = "./examstore.db"
