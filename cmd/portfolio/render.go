package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/tsenadheera/portfolio/internal/render"
)

var (
	renderOut  string
	renderYear int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the rendered page to a file",
	RunE: func(cmd *cobra.Command, args []string) error {
		portfolio, err := loadContent(os.Getenv("CONTENT_PATH"))
		if err != nil {
			return err
		}
		r, err := render.New(portfolio)
		if err != nil {
			return err
		}

		year := renderYear
		if year == 0 {
			year = time.Now().Year()
		}

		var buf bytes.Buffer
		if err := r.Render(&buf, render.Page{Year: year}); err != nil {
			return err
		}

		if err := os.MkdirAll(filepath.Dir(renderOut), 0o755); err != nil {
			return fmt.Errorf("creating output dir: %w", err)
		}
		if err := os.WriteFile(renderOut, buf.Bytes(), 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", renderOut, err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d bytes)\n", renderOut, buf.Len())
		return nil
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", filepath.Join("dist", "index.html"), "output file")
	renderCmd.Flags().IntVar(&renderYear, "year", 0, "copyright year (defaults to the current year)")
	rootCmd.AddCommand(renderCmd)
}
