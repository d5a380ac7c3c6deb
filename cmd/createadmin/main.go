// Command createadmin seeds the portal database with an initial
// administrator account, so a freshly deployed portal can be logged into.
// It is idempotent: when the username already exists nothing is changed.
package main

import (
	"context"
	"errors"
	"flag"

	"golang.org/x/crypto/bcrypt"

	"dashportal/internal/config"
	"dashportal/internal/logger"
	"dashportal/internal/store"
	"dashportal/models"
)

const defaultPassword = "Caps+1234"

func main() {
	var (
		dbPath   = flag.String("d", config.DefaultDBPath, "path to the portal database file")
		username = flag.String("username", "admin", "username of the seeded administrator")
		name     = flag.String("name", "Administrator", "display name of the seeded administrator")
		password = flag.String("password", defaultPassword, "password of the seeded administrator")
	)
	flag.Parse()

	log := logger.NewLogger("dashportal-createadmin")
	ctx := context.Background()

	db, err := store.NewConnectSQLite(ctx, config.DB{Path: *dbPath}, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	users := store.NewUserRepository(db, log)

	if _, err := users.FindUserByUsername(ctx, *username); err == nil {
		log.Info().Str("username", *username).Msg("administrator already exists, nothing to do")
		return
	} else if !errors.Is(err, store.ErrUserNotFound) {
		log.Fatal().Err(err).Msg("error checking for existing administrator")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal().Err(err).Msg("error hashing password")
	}

	created, err := users.CreateUser(ctx, models.User{
		Username:     *username,
		Name:         *name,
		PasswordHash: string(hash),
		Role:         models.RoleAdmin,
		Active:       true,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("error creating administrator")
	}

	log.Info().Int64("id", created.ID).Str("username", created.Username).Msg("administrator created")

	if *password == defaultPassword {
		log.Warn().Msg("administrator was seeded with the default password, change it after first login")
	}
}
