package main

import (
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"coffeeapi/internal/config"
)

// @title Coffee API
// @version 1.0
// @BasePath /
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configFile string
	port       string
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:          "coffeeapi",
		Short:        "Coffee catalog HTTP service",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), opts, cmd.Flags())
		},
	}

	cmd.Flags().StringVar(&opts.configFile, "config", "", "settings file (default ./application.{yaml,json,toml} if present)")
	cmd.Flags().StringVar(&opts.port, "port", "", "listen port, overrides PORT")
	config.RegisterGreetingFlags(cmd.Flags())

	return cmd
}
