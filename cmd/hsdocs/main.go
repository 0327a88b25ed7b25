// Command hsdocs is a command-line interface for the Help Scout Docs API.
// It exposes the four article operations as subcommands and reads the API
// key from the HELPSCOUT_DOCS_API_KEY environment variable (a .env file in
// the working directory is loaded if present).
package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	helpscoutdocs "github.com/helpscout/docs-go"
)

var (
	flagBaseURL string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "hsdocs",
	Short:         "Manage Help Scout Docs articles",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagBaseURL, "base-url", helpscoutdocs.DefaultBaseURL, "Docs API base URL")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(createCmd())
	rootCmd.AddCommand(getCmd())
	rootCmd.AddCommand(updateCmd())
	rootCmd.AddCommand(deleteCmd())
}

// newClient builds a Docs client from the environment and global flags.
func newClient() (*helpscoutdocs.Client, error) {
	apiKey := os.Getenv("HELPSCOUT_DOCS_API_KEY")
	if apiKey == "" {
		return nil, errors.New("HELPSCOUT_DOCS_API_KEY environment variable is required")
	}

	opts := []helpscoutdocs.Option{
		helpscoutdocs.WithBaseURL(flagBaseURL),
	}

	if flagVerbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			return nil, fmt.Errorf("build logger: %w", err)
		}
		opts = append(opts, helpscoutdocs.WithLogger(logger))
	}

	return helpscoutdocs.New(apiKey, opts...)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func createCmd() *cobra.Command {
	var params helpscoutdocs.CreateArticleParams
	var status string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new article in a collection",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			params.Status = helpscoutdocs.ArticleStatus(status)

			result, err := client.CreateArticle(context.Background(), params)
			if err != nil {
				return err
			}

			if result.Article != nil {
				return printJSON(result.Article)
			}
			return printJSON(result)
		},
	}

	cmd.Flags().StringVar(&params.CollectionID, "collection-id", "", "collection ID (required)")
	cmd.Flags().StringVar(&params.Name, "name", "", "article title (required)")
	cmd.Flags().StringVar(&params.Text, "text", "", "article content (required)")
	cmd.Flags().StringVar(&status, "status", "", "article status (published, notpublished, draft)")
	cmd.Flags().StringSliceVar(&params.Categories, "category", nil, "category ID (repeatable)")
	cmd.Flags().StringSliceVar(&params.Tags, "tag", nil, "tag (repeatable)")
	cmd.Flags().StringSliceVar(&params.RelatedArticles, "related", nil, "related article ID (repeatable)")
	cmd.Flags().StringVar(&params.Slug, "slug", "", "custom URL slug")

	cmd.MarkFlagRequired("collection-id")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("text")

	return cmd
}

func getCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <article-id>",
		Short: "Retrieve an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			article, err := client.GetArticle(context.Background(), args[0])
			if err != nil {
				return err
			}
			return printJSON(article)
		},
	}
}

func updateCmd() *cobra.Command {
	var (
		name       string
		text       string
		status     string
		categories []string
		tags       []string
		related    []string
		slug       string
	)

	cmd := &cobra.Command{
		Use:   "update <article-id>",
		Short: "Update an article (only the provided flags are sent)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			// Only flags the user actually set become update fields, so an
			// explicit --tag "" style clear is distinguishable from an
			// omitted flag.
			var opts []helpscoutdocs.UpdateOption
			if cmd.Flags().Changed("name") {
				opts = append(opts, helpscoutdocs.WithName(name))
			}
			if cmd.Flags().Changed("text") {
				opts = append(opts, helpscoutdocs.WithText(text))
			}
			if cmd.Flags().Changed("status") {
				opts = append(opts, helpscoutdocs.WithStatus(helpscoutdocs.ArticleStatus(status)))
			}
			if cmd.Flags().Changed("category") {
				opts = append(opts, helpscoutdocs.WithCategories(categories))
			}
			if cmd.Flags().Changed("tag") {
				opts = append(opts, helpscoutdocs.WithTags(tags))
			}
			if cmd.Flags().Changed("related") {
				opts = append(opts, helpscoutdocs.WithRelatedArticles(related))
			}
			if cmd.Flags().Changed("slug") {
				opts = append(opts, helpscoutdocs.WithSlug(slug))
			}

			article, err := client.UpdateArticle(context.Background(), args[0], opts...)
			if err != nil {
				return err
			}
			return printJSON(article)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "new article title")
	cmd.Flags().StringVar(&text, "text", "", "new article content")
	cmd.Flags().StringVar(&status, "status", "", "new status (published, notpublished, draft)")
	cmd.Flags().StringSliceVar(&categories, "category", nil, "category ID (repeatable)")
	cmd.Flags().StringSliceVar(&tags, "tag", nil, "tag (repeatable)")
	cmd.Flags().StringSliceVar(&related, "related", nil, "related article ID (repeatable)")
	cmd.Flags().StringVar(&slug, "slug", "", "custom URL slug")

	return cmd
}

func deleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <article-id>",
		Short: "Delete an article",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient()
			if err != nil {
				return err
			}

			if err := client.DeleteArticle(context.Background(), args[0]); err != nil {
				return err
			}
			fmt.Printf("deleted article %s\n", args[0])
			return nil
		},
	}
}

func main() {
	// A .env file is optional; environment variables take precedence.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
