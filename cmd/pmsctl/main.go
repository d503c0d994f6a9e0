package main

import (
	"context"
	"fmt"
	"os"

	"go-pms/internal/app"
	"go-pms/internal/cli"
	"go-pms/internal/config"
	"go-pms/internal/shared/apperror"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logger, err := app.NewLogger(cfg)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	apperror.Init()

	root := cli.NewRootCommand(app.CLIBackendOpener(cfg))
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
