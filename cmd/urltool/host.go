package main

import (
	"github.com/spf13/cobra"
)

func newHostCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "host",
		Short: "Inspect hostnames",
	}
	cmd.AddCommand(newHostClassifyCmd(opts))
	cmd.AddCommand(newHostParseCmd(opts))
	return cmd
}

func newHostClassifyCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <host>",
		Short: "Report whether a host is native, custom or plugin",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hostType, err := opts.navService().ClassifyHost(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), map[string]string{
				"host": args[0],
				"type": string(hostType),
			})
		},
	}
}

func newHostParseCmd(opts *rootOptions) *cobra.Command {
	var strict bool
	cmd := &cobra.Command{
		Use:   "parse <host>",
		Short: "Split a host into org and base domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := opts.navService().ParseHost(cmd.Context(), args[0], strict)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), sub)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "fail for hosts without an org, except localhost")
	return cmd
}
