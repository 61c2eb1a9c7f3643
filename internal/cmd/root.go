package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/farisv/iconmill/config"
	"github.com/farisv/iconmill/internal/batch"
)

var Version = "0.1.0"

var rootCmd = &cobra.Command{
	Use:     "iconmill [dir]",
	Version: Version,
	Short:   "Batch recolor and rasterize SVG icons",
	Long: `Iconmill scans a directory for SVG files, recolors each one into a
default and an active palette variant and rasterizes both to fixed-size
PNGs. Without a renderer it saves the recolored SVGs for manual
conversion instead.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := targetDir(args)
		cfg, err := config.Load(dir)
		if err != nil {
			log.Println(err)
			return
		}
		d := batch.NewDriver(cmd.Context(), cfg)
		if _, err := d.Run(cmd.Context(), dir); err != nil {
			log.Println(err)
		}
	},
}

// targetDir resolves the directory to scan: the positional argument when
// given, otherwise the directory the executable itself lives in.
func targetDir(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	exe, err := os.Executable()
	if err != nil {
		return "."
	}
	return filepath.Dir(exe)
}

func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(generateConfigCmd)
}
