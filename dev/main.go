package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	devenv "resultsdb/dev/env"
	"resultsdb/internal/db"
	configlibsql "resultsdb/lib/configutil/libsql"
)

const localConfig = `{
  // overrides config.json5, never committed
  database: {
    file: "<dev_state>/results.db",
  },
}
`

func writeLocalConfig() error {
	_, err := os.Stat("config.local.json5")
	if err == nil {
		slog.Info("config.local.json5 already exists")
		return nil
	}
	if !os.IsNotExist(err) {
		return err
	}
	return os.WriteFile("config.local.json5", []byte(localConfig), 0600)
}

func create(ctx context.Context, recreate bool) error {
	_, err := os.Stat("go.mod")
	if os.IsNotExist(err) {
		return fmt.Errorf("the dev environment must be created in the repository root (the same directory as the 'go.mod' file)")
	}

	if recreate {
		err = os.RemoveAll("dev/.state")
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	_, err = devenv.ResolvePath("<dev_state>")
	if err != nil {
		return err
	}

	database, err := configlibsql.Struct{File: "<dev_state>/results.db"}.OpenDB()
	if err != nil {
		return err
	}
	defer database.Close()

	err = db.Setup(ctx, database)
	if errors.Is(err, db.ErrAlreadySetup) {
		slog.Info("dev database already exists")
	} else if err != nil {
		return err
	}

	return writeLocalConfig()
}

func main() {
	recreate := flag.Bool("recreate", false, "recreate the dev environment from scratch")
	flag.Parse()

	err := create(context.Background(), *recreate)
	if err != nil {
		slog.Error("failed to create dev environment", "err", err.Error())
		os.Exit(1)
	}

	slog.Info("dev environment created sucessfully!")
}
