package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/inkpress/inkcli/internal/client/models"
)

// ListBlogs fetches the public listing with GET /blogs, filtered and paged
// by params.
func (c *Client) ListBlogs(ctx context.Context, params models.ListParams) (*models.BlogList, error) {
	path := "/blogs"
	if q := params.Values().Encode(); q != "" {
		path += "?" + q
	}

	var out models.BlogList
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// GetBlog fetches a single post with GET /blogs/:id.
func (c *Client) GetBlog(ctx context.Context, id string) (*models.Blog, error) {
	if id == "" {
		return nil, validationError("Blog ID is required")
	}

	var out models.Blog
	if err := c.doJSON(ctx, http.MethodGet, "/blogs/"+url.PathEscape(id), nil, &out, false); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBlog publishes a post with POST /blogs.
func (c *Client) CreateBlog(ctx context.Context, req models.BlogRequest) (*models.Blog, error) {
	if req.Title == "" || req.Content == "" {
		return nil, validationError("Title and content are required")
	}

	var out models.Blog
	if err := c.doJSON(ctx, http.MethodPost, "/blogs", req, &out, true); err != nil {
		return nil, err
	}
	c.log.Info(ctx, "blog created", "id", out.ID)
	return &out, nil
}

// UpdateBlog rewrites a post with PUT /blogs/:id.
func (c *Client) UpdateBlog(ctx context.Context, id string, req models.BlogRequest) (*models.Blog, error) {
	if id == "" {
		return nil, validationError("Blog ID is required")
	}
	if req.Title == "" || req.Content == "" {
		return nil, validationError("Title and content are required")
	}

	var out models.Blog
	if err := c.doJSON(ctx, http.MethodPut, "/blogs/"+url.PathEscape(id), req, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBlog removes a post with DELETE /blogs/:id.
func (c *Client) DeleteBlog(ctx context.Context, id string) error {
	if id == "" {
		return validationError("Blog ID is required")
	}
	return c.doJSON(ctx, http.MethodDelete, "/blogs/"+url.PathEscape(id), nil, nil, true)
}

// MyBlogs fetches the caller's own posts with GET /blogs/my.
func (c *Client) MyBlogs(ctx context.Context, params models.ListParams) (*models.BlogList, error) {
	path := "/blogs/my"
	if q := params.Values().Encode(); q != "" {
		path += "?" + q
	}

	var out models.BlogList
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// ToggleLike flips the caller's like on a post with POST /blogs/:id/like.
func (c *Client) ToggleLike(ctx context.Context, blogID string) (*models.LikeResult, error) {
	if blogID == "" {
		return nil, validationError("Blog ID is required")
	}

	var out models.LikeResult
	if err := c.doJSON(ctx, http.MethodPost, "/blogs/"+url.PathEscape(blogID)+"/like", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddComment posts a comment with POST /blogs/:id/comments. Content is
// trimmed; blank comments are rejected locally.
func (c *Client) AddComment(ctx context.Context, blogID, content string) (*models.CommentResult, error) {
	if blogID == "" {
		return nil, validationError("Blog ID is required")
	}
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, validationError("Comment content is required")
	}

	payload := map[string]string{"content": content}

	var out models.CommentResult
	if err := c.doJSON(ctx, http.MethodPost, "/blogs/"+url.PathEscape(blogID)+"/comments", payload, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes a comment with DELETE /blogs/:id/comments/:commentId.
func (c *Client) DeleteComment(ctx context.Context, blogID, commentID string) (*models.CommentResult, error) {
	if blogID == "" {
		return nil, validationError("Blog ID is required")
	}
	if commentID == "" {
		return nil, validationError("Comment ID is required")
	}

	path := "/blogs/" + url.PathEscape(blogID) + "/comments/" + url.PathEscape(commentID)

	var out models.CommentResult
	if err := c.doJSON(ctx, http.MethodDelete, path, nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}

// BlogStats fetches the caller's authoring stats with GET /blogs/stats.
func (c *Client) BlogStats(ctx context.Context) (*models.BlogStats, error) {
	var out models.BlogStats
	if err := c.doJSON(ctx, http.MethodGet, "/blogs/stats", nil, &out, true); err != nil {
		return nil, err
	}
	return &out, nil
}
