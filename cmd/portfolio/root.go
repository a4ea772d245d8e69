package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tsenadheera/portfolio/internal/content"
)

// Version is set via ldflags at build time.
var Version = "dev"

var contentPath string

var rootCmd = &cobra.Command{
	Use:           "portfolio",
	Short:         "Personal portfolio site server",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "portfolio %s\n", Version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&contentPath, "content", "", "portfolio YAML file (defaults to CONTENT_PATH, then the embedded content)")
	rootCmd.AddCommand(versionCmd)
}

// loadContent prefers the flag, then the configured path, then the embedded
// file.
func loadContent(configured string) (*content.Portfolio, error) {
	path := contentPath
	if path == "" {
		path = configured
	}
	if path == "" {
		return content.Default(), nil
	}
	p, err := content.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return p, nil
}
