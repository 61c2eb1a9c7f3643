package cmd

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/farisv/iconmill/config"
	"github.com/farisv/iconmill/internal/batch"
	"github.com/farisv/iconmill/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Convert SVGs as they appear or change in the directory",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := targetDir(args)
		cfg, err := config.Load(dir)
		if err != nil {
			log.Println(err)
			return
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		w := &watch.Watcher{Driver: batch.NewDriver(ctx, cfg)}
		if err := w.Run(ctx, dir); err != nil {
			log.Println(err)
		}
	},
}
