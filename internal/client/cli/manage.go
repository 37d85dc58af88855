package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/inkpress/inkcli/internal/client/models"
)

func (a *App) create(ctx context.Context) {
	req, ok := a.readBlogForm(models.BlogRequest{})
	if !ok {
		return
	}

	blog, err := a.api.CreateBlog(ctx, req)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Created post %s\n", blog.ID)
}

func (a *App) edit(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: edit <id>")
		return
	}

	current, err := a.api.GetBlog(ctx, args[0])
	if err != nil {
		a.printErr(err)
		return
	}

	req, ok := a.readBlogForm(models.BlogRequest{
		Title:   current.Title,
		Content: current.Content,
		Summary: current.Summary,
		Image:   current.Image,
		Tags:    current.Tags,
	})
	if !ok {
		return
	}

	updated, err := a.api.UpdateBlog(ctx, args[0], req)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Updated post %s\n", updated.ID)
}

// readBlogForm collects the writable post fields, keeping existing values
// when the user enters nothing.
func (a *App) readBlogForm(initial models.BlogRequest) (models.BlogRequest, bool) {
	title, err := GetSimpleText(a.reader, "Title", a.out)
	if err != nil {
		a.printErr(err)
		return initial, false
	}
	if title != "" {
		initial.Title = title
	}

	content, err := GetMultiline(a.reader, "Content", a.out)
	if err != nil {
		a.printErr(err)
		return initial, false
	}
	if content != "" {
		initial.Content = content
	}

	tags, err := GetSimpleText(a.reader, "Tags (comma-separated, optional)", a.out)
	if err != nil {
		a.printErr(err)
		return initial, false
	}
	if tags != "" {
		var parsed []string
		for _, tag := range strings.Split(tags, ",") {
			if tag = strings.TrimSpace(tag); tag != "" {
				parsed = append(parsed, tag)
			}
		}
		initial.Tags = parsed
	}

	return initial, true
}

func (a *App) delete(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: delete <id>")
		return
	}

	confirm, err := GetSimpleText(a.reader, fmt.Sprintf("Delete post %s? (yes/no)", args[0]), a.out)
	if err != nil {
		a.printErr(err)
		return
	}
	if confirm != "yes" {
		fmt.Fprintln(a.out, "Cancelled")
		return
	}

	if err := a.api.DeleteBlog(ctx, args[0]); err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintln(a.out, "Post deleted")
}

func (a *App) upload(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintln(a.out, "Usage: upload <path>")
		return
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		a.printErr(err)
		return
	}

	result, err := a.api.UploadImage(ctx, filepath.Base(args[0]), data)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Uploaded: %s\n", result.ImageURL)
}

func (a *App) stats(ctx context.Context) {
	stats, err := a.api.BlogStats(ctx)
	if err != nil {
		a.printErr(err)
		return
	}
	fmt.Fprintf(a.out, "Posts: %d  Views: %d  Likes: %d  Comments: %d\n",
		stats.TotalBlogs, stats.TotalViews, stats.TotalLikes, stats.TotalComments)
}
