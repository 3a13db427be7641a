package cli

import (
	"blogsphere/internal/app"

	"github.com/spf13/cobra"
)

func newPostCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "post",
		Short: "Create, edit, delete or read posts",
	}
	cmd.AddCommand(
		newPostCreateCmd(a),
		newPostEditCmd(a),
		newPostDeleteCmd(a),
		newPostViewCmd(a),
	)
	return cmd
}

func newPostCreateCmd(a *app.App) *cobra.Command {
	var title, content, category string
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Publish a new post",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			if _, err := a.NewPost(ctx); err != nil {
				return err
			}
			_, _, v, err := a.SubmitPost(ctx, title, content, category)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			success(out, "Post published successfully!")
			renderView(out, a, v)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "post title")
	cmd.Flags().StringVar(&content, "content", "", "post body")
	cmd.Flags().StringVar(&category, "category", "", "optional category")
	return cmd
}

func newPostEditCmd(a *app.App) *cobra.Command {
	var title, content, category string
	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit one of your posts; omitted fields keep their value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			current, _, err := a.EditPost(ctx, id)
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if !flags.Changed("title") {
				title = current.Title
			}
			if !flags.Changed("content") {
				content = current.Content
			}
			if !flags.Changed("category") {
				category = current.Category
			}

			_, _, v, err := a.SubmitPost(ctx, title, content, category)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			success(out, "Post updated successfully!")
			renderView(out, a, v)
			return nil
		},
	}
	cmd.Flags().StringVar(&title, "title", "", "new title")
	cmd.Flags().StringVar(&content, "content", "", "new body")
	cmd.Flags().StringVar(&category, "category", "", "new category")
	return cmd
}

func newPostDeleteCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one of your posts and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			v, err := a.DeletePost(cmd.Context(), id)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			success(out, "Post deleted successfully!")
			renderView(out, a, v)
			return nil
		},
	}
}

func newPostViewCmd(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "view <id>",
		Short: "Read a post and its comments",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			v, err := a.ViewPost(cmd.Context(), id)
			if err != nil {
				return err
			}
			renderView(cmd.OutOrStdout(), a, v)
			return nil
		},
	}
}

func newCommentCmd(a *app.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "comment",
		Short: "Comment on posts",
	}
	cmd.AddCommand(newCommentAddCmd(a))
	return cmd
}

func newCommentAddCmd(a *app.App) *cobra.Command {
	var content string
	cmd := &cobra.Command{
		Use:   "add <post-id>",
		Short: "Add a comment to a post",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			_, v, err := a.AddComment(cmd.Context(), id, content)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			success(out, "Comment added successfully!")
			renderView(out, a, v)
			return nil
		},
	}
	cmd.Flags().StringVar(&content, "content", "", "comment text")
	return cmd
}
