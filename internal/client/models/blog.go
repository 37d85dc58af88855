package models

import (
	"net/url"
	"strconv"
)

// Blog is a single post as served by the backend.
type Blog struct {
	ID            string    `json:"_id"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Summary       string    `json:"summary,omitempty"`
	Image         string    `json:"image,omitempty"`
	Tags          []string  `json:"tags,omitempty"`
	User          *User     `json:"user,omitempty"`
	Likes         []string  `json:"likes,omitempty"`
	LikesCount    int       `json:"likesCount"`
	Comments      []Comment `json:"comments,omitempty"`
	CommentsCount int       `json:"commentsCount"`
	Views         int       `json:"views"`
	Status        string    `json:"status,omitempty"`
	CreatedAt     string    `json:"createdAt,omitempty"`
	UpdatedAt     string    `json:"updatedAt,omitempty"`
}

// Comment is a reader comment attached to a blog.
type Comment struct {
	ID        string `json:"_id"`
	User      *User  `json:"user,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// BlogRequest carries the writable fields for create and update.
type BlogRequest struct {
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Summary string   `json:"summary,omitempty"`
	Image   string   `json:"image,omitempty"`
	Tags    []string `json:"tags,omitempty"`
	Status  string   `json:"status,omitempty"`
}

// Pagination describes the listing window the backend returned.
type Pagination struct {
	CurrentPage int  `json:"currentPage"`
	TotalPages  int  `json:"totalPages"`
	TotalItems  int  `json:"totalItems,omitempty"`
	HasNext     bool `json:"hasNext,omitempty"`
	HasPrev     bool `json:"hasPrev,omitempty"`
}

// BlogList is the response of the listing endpoints.
type BlogList struct {
	Blogs      []Blog      `json:"blogs"`
	Pagination *Pagination `json:"pagination,omitempty"`
}

// ListParams selects and pages a blog listing. Zero values are omitted from
// the query string.
type ListParams struct {
	Tag    string
	Search string
	Page   int
	Limit  int
}

// Values encodes the parameters as a URL query.
func (p ListParams) Values() url.Values {
	v := url.Values{}
	if p.Tag != "" {
		v.Set("tag", p.Tag)
	}
	if p.Search != "" {
		v.Set("search", p.Search)
	}
	if p.Page > 0 {
		v.Set("page", strconv.Itoa(p.Page))
	}
	if p.Limit > 0 {
		v.Set("limit", strconv.Itoa(p.Limit))
	}
	return v
}

// LikeResult is the response of the like toggle.
type LikeResult struct {
	Message    string   `json:"message,omitempty"`
	Likes      []string `json:"likes,omitempty"`
	LikesCount int      `json:"likesCount"`
	Liked      bool     `json:"liked,omitempty"`
}

// CommentResult is the response of the comment endpoints.
type CommentResult struct {
	Message  string    `json:"message,omitempty"`
	Comments []Comment `json:"comments,omitempty"`
}

// BlogStats aggregates the caller's authoring activity.
type BlogStats struct {
	TotalBlogs    int `json:"totalBlogs"`
	TotalViews    int `json:"totalViews"`
	TotalLikes    int `json:"totalLikes"`
	TotalComments int `json:"totalComments"`
}

// UploadResult is the response of POST /upload/image.
type UploadResult struct {
	Message  string `json:"message,omitempty"`
	ImageURL string `json:"imageUrl"`
}

// ContactRequest is the contact-form payload.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ContactResult acknowledges a contact submission.
type ContactResult struct {
	Message string `json:"message,omitempty"`
}

// HealthStatus is the backend liveness report.
type HealthStatus struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Uptime  any    `json:"uptime,omitempty"`
}
