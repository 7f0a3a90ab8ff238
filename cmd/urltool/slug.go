package main

import (
	"github.com/spf13/cobra"

	"gridnav/internal/domain/models/navigation"
	"gridnav/internal/service/urlstate"
)

func newSlugCmd(opts *rootOptions) *cobra.Command {
	var doc navigation.DocumentRef
	var urlID string
	cmd := &cobra.Command{
		Use:   "slug <name>",
		Short: "Print the slug for a document name",
		Long: "Print the slug for a document name. With --id and --url-id, print the\n" +
			"slug only when links to that document would use one.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc.Name = args[0]
			var slug string
			if doc.ID == "" {
				slug = urlstate.NameToSlug(doc.Name)
			} else {
				if urlID != "" {
					doc.URLID = &urlID
				}
				slug = opts.navService().Slug(cmd.Context(), doc)
			}
			return writeJSON(cmd.OutOrStdout(), map[string]string{"slug": slug})
		},
	}
	cmd.Flags().StringVar(&doc.ID, "id", "", "document id")
	cmd.Flags().StringVar(&urlID, "url-id", "", "document url id")
	return cmd
}
