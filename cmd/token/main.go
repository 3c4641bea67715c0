// Command token signs an access token for the scheduling API with the configured JWT secret.
//
//	go run ./cmd/token -email ops@school.vn -role ADMIN
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/yigit/linguacrm/internal/app/models"
	"github.com/yigit/linguacrm/internal/bootstrap"
	"github.com/yigit/linguacrm/internal/config"
	"github.com/yigit/linguacrm/internal/pkg/logger"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		logger.Error().Err(err).Msg("Failed to issue token")
		os.Exit(1)
	}
}

func run(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("token", flag.ContinueOnError)
	configPath := fs.String("config", filepath.Join("configs", "config.yaml"), "path to the YAML config file")
	userID := fs.String("user", "", "user ID to embed; a random one when empty")
	email := fs.String("email", "", "email claim")
	role := fs.String("role", string(models.RoleAdmin), "role claim: ADMIN, STAFF or TEACHER")
	if err := fs.Parse(args); err != nil {
		return err
	}

	r := models.RoleType(strings.ToUpper(*role))
	switch r {
	case models.RoleAdmin, models.RoleStaff, models.RoleTeacher:
	default:
		return fmt.Errorf("unknown role %q", *role)
	}

	id := uuid.New()
	if *userID != "" {
		parsed, err := uuid.Parse(*userID)
		if err != nil {
			return fmt.Errorf("invalid user ID: %w", err)
		}
		id = parsed
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	token, err := bootstrap.NewJWTService(cfg).GenerateAccessToken(id, *email, string(r))
	if err != nil {
		return err
	}

	logger.Info().
		Str("userID", id.String()).
		Str("role", string(r)).
		Str("expiresIn", cfg.JWT.AccessTokenExpiration).
		Msg("Access token issued")
	_, err = fmt.Fprintln(out, token)
	return err
}
