package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/farisv/iconmill/config"
)

var generateConfigCmd = &cobra.Command{
	Use:   "generate-config [dir]",
	Short: "Write an iconmill.yaml with the default settings",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := targetDir(args)
		path := filepath.Join(dir, config.ConfigFileName)

		if _, err := os.Stat(path); err == nil {
			fmt.Printf("%s already exists, not overwriting\n", path)
			return
		}

		if err := config.Write(dir, config.Default()); err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		fmt.Printf("Wrote %s\n", path)
	},
}
