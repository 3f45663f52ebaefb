package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"postboard/internal/handler/http/dto"
	"postboard/internal/repository"
)

type exportDoc struct {
	Accounts []dto.Account `json:"accounts"`
	Posts    []dto.Post    `json:"posts"`
	Comments []dto.Comment `json:"comments"`
}

func newExportCmd() *cobra.Command {
	var publishedOnly bool

	cmd := &cobra.Command{
		Use:   "export [file]",
		Short: "Print a seed as the JSON the API would return",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := loadSeeded(seedArg(args))
			if err != nil {
				return err
			}
			doc := snapshot(cmd.Context(), store, publishedOnly)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(doc); err != nil {
				return fmt.Errorf("encode export: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&publishedOnly, "published", false, "Only include published posts and their comments")
	return cmd
}

func snapshot(ctx context.Context, store repository.Reader, publishedOnly bool) exportDoc {
	accounts := store.ListAccounts(ctx, "")
	posts := store.ListPosts(ctx, "")
	comments := store.ListComments(ctx)

	if publishedOnly {
		visible := make(map[string]bool, len(posts))
		kept := posts[:0]
		for _, p := range posts {
			if p.Published {
				visible[p.ID] = true
				kept = append(kept, p)
			}
		}
		posts = kept

		keptComments := comments[:0]
		for _, c := range comments {
			if visible[c.PostID] {
				keptComments = append(keptComments, c)
			}
		}
		comments = keptComments
	}

	return exportDoc{
		Accounts: dto.FromAccounts(accounts),
		Posts:    dto.FromPosts(posts),
		Comments: dto.FromComments(comments),
	}
}
