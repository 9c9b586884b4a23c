// Command boards runs the Kanban boards service.
//
// Usage:
//
//	boards serve
//	boards migrate up|down|status
//	boards token --user=<uuid>
//	boards version
//
// Configuration is read from --config (or CONFIG_PATH) and the environment.
// A .env file in the working directory is loaded first when present.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/boards-backend/internal/app"
	"github.com/heartmarshall/boards-backend/internal/config"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "load .env:", err)
		os.Exit(1)
	}

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "boards",
		Short:         "Kanban boards service",
		Version:       app.BuildVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", os.Getenv("CONFIG_PATH"), "path to a YAML config file")

	load := func() (*config.Config, error) {
		return config.LoadFrom(configPath)
	}

	root.AddCommand(serveCmd(load))
	root.AddCommand(migrateCmd(load))
	root.AddCommand(tokenCmd(load))
	root.AddCommand(versionCmd())
	return root
}

type configLoader func() (*config.Config, error)
