package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/inkpress/inkcli/internal/client/models"
)

const defaultPageSize = 10

func (a *App) list(ctx context.Context, args []string) {
	params := models.ListParams{Limit: defaultPageSize}
	if len(args) > 0 {
		page, err := strconv.Atoi(args[0])
		if err != nil || page < 1 {
			fmt.Fprintln(a.out, "Usage: list [page]")
			return
		}
		params.Page = page
	}
	a.printListing(ctx, params)
}

func (a *App) search(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: search <text>")
		return
	}
	a.printListing(ctx, models.ListParams{Search: strings.Join(args, " "), Limit: defaultPageSize})
}

func (a *App) byTag(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: tag <tag>")
		return
	}
	a.printListing(ctx, models.ListParams{Tag: args[0], Limit: defaultPageSize})
}

func (a *App) printListing(ctx context.Context, params models.ListParams) {
	result, err := a.api.ListBlogs(ctx, params)
	if err != nil {
		a.printErr(err)
		return
	}
	a.renderBlogList(result)
}

func (a *App) renderBlogList(result *models.BlogList) {
	if len(result.Blogs) == 0 {
		fmt.Fprintln(a.out, "No posts found")
		return
	}
	for _, b := range result.Blogs {
		author := ""
		if b.User != nil {
			author = " by @" + b.User.Username
		}
		fmt.Fprintf(a.out, "%s  %s%s  [likes:%d comments:%d views:%d]\n",
			b.ID, b.Title, author, b.LikesCount, b.CommentsCount, b.Views)
	}
	if p := result.Pagination; p != nil && p.TotalPages > 1 {
		fmt.Fprintf(a.out, "Page %d of %d\n", p.CurrentPage, p.TotalPages)
	}
}

func (a *App) show(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: show <id>")
		return
	}

	blog, err := a.api.GetBlog(ctx, args[0])
	if err != nil {
		a.printErr(err)
		return
	}

	fmt.Fprintf(a.out, "# %s\n", blog.Title)
	if blog.User != nil {
		fmt.Fprintf(a.out, "by %s (@%s)\n", blog.User.Name, blog.User.Username)
	}
	if len(blog.Tags) > 0 {
		fmt.Fprintf(a.out, "tags: %s\n", strings.Join(blog.Tags, ", "))
	}
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, blog.Content)
	fmt.Fprintf(a.out, "\n%d likes, %d views\n", blog.LikesCount, blog.Views)

	if len(blog.Comments) > 0 {
		fmt.Fprintln(a.out, "Comments:")
		for _, c := range blog.Comments {
			who := "anonymous"
			if c.User != nil {
				who = "@" + c.User.Username
			}
			fmt.Fprintf(a.out, "  %s  %s: %s\n", c.ID, who, c.Content)
		}
	}
}

func (a *App) myBlogs(ctx context.Context) {
	result, err := a.api.MyBlogs(ctx, models.ListParams{})
	if err != nil {
		a.printErr(err)
		return
	}
	a.renderBlogList(result)
}
