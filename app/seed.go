package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"gearguard/seeders"
)

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Insert demo dictionaries and the admin account",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, pool, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer logger.Sync() //nolint:errcheck
			defer pool.Close()

			if failed := seeders.Run(cmd.Context(), pool, cfg, logger); failed > 0 {
				return fmt.Errorf("%d seed steps failed", failed)
			}
			return nil
		},
	}
}
