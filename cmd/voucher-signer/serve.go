package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/btcq-org/rewardpool/signer"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func serveCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP voucher signing service",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.load()
			if err != nil {
				return err
			}
			svc, err := signer.NewService(*cfg)
			if err != nil {
				return err
			}
			// wait for termination signal (Ctrl+C / SIGINT or SIGTERM)
			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			if err := svc.Start(ctx); err != nil {
				return err
			}
			<-ctx.Done()
			log.Info().Msg("received signal, shutting down")
			svc.Stop()
			return nil
		},
	}
}
