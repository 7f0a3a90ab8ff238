package main

import (
	"github.com/spf13/cobra"

	"gridnav/internal/domain/services"
)

func newDecodeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "decode <url>",
		Short: "Decode a URL into its navigation state",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := opts.navService().DecodeURL(cmd.Context(), &services.DecodeURLRequest{
				Org: opts.cfg.Org,
				URL: args[0],
			})
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), state)
		},
	}
}
