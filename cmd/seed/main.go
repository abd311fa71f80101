// Command seed creates or promotes the bootstrap administrator account.
package main

import (
	"context"
	"flag"
	"fmt"
	"time"

	"carexyz/config"
	"carexyz/database"
	userRepoPkg "carexyz/database/repository/user"
	"carexyz/services/user"
	"carexyz/utils"

	"go.uber.org/zap"
)

func main() {
	seed := user.DefaultAdminSeed
	flag.StringVar(&seed.Email, "email", seed.Email, "admin email")
	flag.StringVar(&seed.Password, "password", seed.Password, "admin password")
	flag.StringVar(&seed.Name, "name", seed.Name, "admin display name")
	flag.Parse()

	config.LoadConfig()
	cfg := config.AppConfig
	utils.InitializeLogger(cfg.Env, cfg.LogLevel)
	logger := utils.GetLogger()
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("seed: failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := database.Disconnect(client); err != nil {
			logger.Warn("seed: failed to disconnect MongoDB", zap.Error(err))
		}
	}()

	repo := userRepoPkg.NewMongoUserRepo(client.Database(cfg.DBName))
	if err := repo.EnsureIndexes(ctx); err != nil {
		logger.Warn("seed: failed to ensure user indexes", zap.Error(err))
	}

	svc := &user.DefaultUserService{Repo: repo, Logger: logger}
	if err := seedAdmin(ctx, svc, seed, logger); err != nil {
		logger.Fatal("seed: failed to ensure admin", zap.Error(err))
	}
}

// seedAdmin runs the bootstrap and reports failures to the caller so the
// process exits non-zero.
func seedAdmin(ctx context.Context, svc user.UserService, seed user.AdminSeed, logger *zap.Logger) error {
	admin, err := svc.EnsureAdmin(ctx, seed)
	if err != nil {
		return fmt.Errorf("ensure admin %s: %w", seed.Email, err)
	}
	logger.Info("seed: admin ready", zap.String("email", admin.Email), zap.String("id", admin.ID.Hex()))
	return nil
}
