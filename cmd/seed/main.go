package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"cmsadmin/application"
	"cmsadmin/database"
	"cmsadmin/infrastructure/config"
	"cmsadmin/infrastructure/repositories"
	"cmsadmin/logging"
)

// Seeds a demo site and prints session tokens for its administrators.
func main() {
	dbPath := flag.String("db", "", "database path (defaults to DB_PATH)")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.LoadAppConfigFromEnv()
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	logger := logging.NewLogger(cfg.Logging)
	logging.SetDefault(logger)

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("Seeding failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.AppConfig, logger *logging.Logger) error {
	db, err := database.New(*cfg.Database, logger)
	if err != nil {
		return err
	}
	defer db.Close()

	seed, err := repositories.NewDemoSeeder(db).Seed(ctx)
	if err != nil {
		return err
	}

	auth := application.NewAuthService(
		repositories.NewSqlcSessionRepository(db),
		repositories.NewSqlcPermissionRepository(db),
		repositories.NewSqlcChannelRepository(db),
	)

	fmt.Printf("site %d: root channel %d, news %d, events %d, %d contents\n",
		seed.SiteID, seed.RootChannelID, seed.NewsChannelID, seed.EventChannelID, len(seed.ContentIDs))

	for _, admin := range []struct {
		name string
		id   int64
	}{{"admin", seed.SuperAdminID}, {"editor", seed.EditorID}} {
		session, err := auth.IssueSession(ctx, admin.id, cfg.Session.TTL)
		if err != nil {
			return fmt.Errorf("issue session for %s: %w", admin.name, err)
		}
		fmt.Printf("%-6s token %s (expires %s)\n", admin.name, session.Token, session.ExpiresAt.Format("2006-01-02 15:04"))
	}

	return nil
}
