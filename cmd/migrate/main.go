package main

import (
	"fmt"
	"os"

	"medflow-server/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/sirupsen/logrus"
)

func main() {
	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	dsn := fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=disable",
		cfg.DB.User, cfg.DB.Password, cfg.DB.Host, cfg.DB.Port, cfg.DB.Name,
	)

	m, err := migrate.New("file://db/migrations", dsn)
	if err != nil {
		logrus.Fatalf("Failed to initialize migrations: %v", err)
	}
	defer m.Close()

	switch direction {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	default:
		logrus.Fatalf("Unknown direction %q, expected up or down", direction)
	}

	if err != nil && err != migrate.ErrNoChange {
		logrus.Fatalf("Migration failed: %v", err)
	}

	logrus.Infof("Migrations applied (%s)", direction)
}
