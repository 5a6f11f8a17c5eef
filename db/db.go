package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"
	"github.com/rs/zerolog"
)

// MembershipDB wraps the relational store holding users, groups and the
// memberships between them. Uniqueness of emails, group names and
// (user, group) pairs is enforced by constraints declared in the schema,
// not by application-level locking.
type MembershipDB struct {
	DB  *sql.DB
	Log *zerolog.Logger
}

// NewMembershipDB opens the database named by DATABASE_URL and verifies
// the connection before returning.
func NewMembershipDB(log *zerolog.Logger) (*MembershipDB, error) {
	connStr := os.Getenv("DATABASE_URL")
	if connStr == "" {
		log.Error().Msg("DATABASE_URL environment variable is not set")
		return nil, fmt.Errorf("DATABASE_URL environment variable is not set")
	}

	database, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Error().Err(err).Msg("Failed to open database connection")
		return nil, err
	}

	// Check we are actually connected
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := database.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("Database connection failed during ping")
		return nil, err
	}

	return &MembershipDB{DB: database, Log: log}, nil
}

func (db *MembershipDB) Close() error {
	if err := db.DB.Close(); err != nil {
		return err
	}
	db.Log.Info().Msg("database connection closed")
	return nil
}
