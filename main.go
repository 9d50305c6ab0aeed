package main

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/vx-finance/cmd/backup"
	"fjacquet/vx-finance/cmd/category"
	"fjacquet/vx-finance/cmd/client"
	"fjacquet/vx-finance/cmd/insights"
	"fjacquet/vx-finance/cmd/project"
	"fjacquet/vx-finance/cmd/report"
	"fjacquet/vx-finance/cmd/reset"
	"fjacquet/vx-finance/cmd/root"
	"fjacquet/vx-finance/cmd/tx"

	"github.com/joho/godotenv"
)

func init() {
	// 1. Load environment variables silently first (GEMINI_API_KEY, VX_*)
	loadEnvSilently()

	// 2. Initialize root command flags
	root.Init()

	// 3. Add all subcommands
	root.Cmd.AddCommand(tx.Cmd)
	root.Cmd.AddCommand(client.Cmd)
	root.Cmd.AddCommand(project.Cmd)
	root.Cmd.AddCommand(category.Cmd)
	root.Cmd.AddCommand(report.Cmd)
	root.Cmd.AddCommand(backup.Cmd)
	root.Cmd.AddCommand(reset.Cmd)
	root.Cmd.AddCommand(insights.Cmd)
}

// loadEnvSilently loads environment variables without logging anything
func loadEnvSilently() {
	envFile := ".env"
	if _, err := os.Stat(envFile); os.IsNotExist(err) {
		envFile = filepath.Join("..", ".env")
		if _, err := os.Stat(envFile); os.IsNotExist(err) {
			return
		}
	}
	_ = godotenv.Load(envFile)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
