package main

import (
	"github.com/spf13/cobra"

	"gridnav/internal/domain/models/navigation"
)

func newURLIDCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "urlid",
		Short: "Split or build document ids with fork and snapshot parts",
	}
	cmd.AddCommand(newURLIDParseCmd(opts))
	cmd.AddCommand(newURLIDBuildCmd(opts))
	return cmd
}

func newURLIDParseCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <id>",
		Short: "Split a document id into trunk, fork and snapshot parts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parts, err := opts.navService().ParseURLID(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), parts)
		},
	}
}

func newURLIDBuildCmd(opts *rootOptions) *cobra.Command {
	var (
		parts    navigation.URLIDParts
		forkUser int
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Join trunk, fork and snapshot parts into a document id",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("fork-user") {
				parts.ForkUserID = navigation.Int(forkUser)
			}
			id, err := opts.navService().BuildURLID(cmd.Context(), parts)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]string{"id": id})
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&parts.TrunkID, "trunk", "", "trunk document id")
	flags.StringVar(&parts.ForkID, "fork", "", "fork id")
	flags.IntVar(&forkUser, "fork-user", 0, "id of the user owning the fork")
	flags.StringVar(&parts.SnapshotID, "snapshot", "", "snapshot id")
	return cmd
}
