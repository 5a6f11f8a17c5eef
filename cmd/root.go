package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/grouphub/user-group-services/db"
	"github.com/grouphub/user-group-services/internal/appconfig"
)

var (
	logLevel   string
	configPath string
	host       string
	port       int

	appCfg       *appconfig.Config
	membershipDB *db.MembershipDB
)

var rootCmd = &cobra.Command{
	Use:   "user-group-services",
	Short: "User Group Services",
	Long:  `User Group Services is a CLI tool for running the user/group membership API and its database migrations.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "warn",
		"sets the log level")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml",
		"path to the config file")
}

// commonSetUp loads the environment, configuration and database; shared by
// the serve and migrate commands.
func commonSetUp() {
	setLogging(logLevel)

	// A missing .env file is fine; the environment may already be set
	_ = godotenv.Load()

	var err error
	appCfg, err = appconfig.LoadConfig(configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	if err := os.Setenv("DATABASE_URL", appCfg.Database.Source); err != nil {
		log.Fatal().Err(err).Msg("failed to set DATABASE_URL")
	}

	membershipDB, err = db.NewMembershipDB(&log.Logger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize MembershipDB")
	}
}

func setLogging(level string) {
	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	switch strings.ToLower(level) {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "info":
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	case "fatal":
		zerolog.SetGlobalLevel(zerolog.FatalLevel)
	case "panic":
		zerolog.SetGlobalLevel(zerolog.PanicLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
}
