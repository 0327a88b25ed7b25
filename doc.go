// Package helpscoutdocs provides a Go client for the Help Scout Docs API v1.
//
// The Docs API uses HTTP Basic Authentication with the API key as the
// username and a fixed placeholder password, unlike the Mailbox API which
// uses OAuth2.
//
// Basic usage:
//
//	client, err := helpscoutdocs.New(os.Getenv("HELPSCOUT_DOCS_API_KEY"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Create an article in a collection
//	result, err := client.CreateArticle(ctx, helpscoutdocs.CreateArticleParams{
//	    CollectionID: "524712f4e4b0305cf2cdfd34",
//	    Name:         "Getting Started",
//	    Text:         "<p>Welcome!</p>",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Publish it
//	article, err := client.UpdateArticle(ctx, result.ID,
//	    helpscoutdocs.WithStatus(helpscoutdocs.StatusPublished))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Published:", article.PublicURL)
package helpscoutdocs
