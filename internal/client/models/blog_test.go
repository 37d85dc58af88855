package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListParams_Values(t *testing.T) {
	v := ListParams{Tag: "go", Search: "testing", Page: 2, Limit: 10}.Values()
	assert.Equal(t, "limit=10&page=2&search=testing&tag=go", v.Encode())
}

func TestListParams_ZeroValuesOmitted(t *testing.T) {
	v := ListParams{}.Values()
	assert.Empty(t, v.Encode())

	v = ListParams{Page: 0, Limit: -1}.Values()
	assert.Empty(t, v.Encode())
}

func TestBlog_DecodesBackendShape(t *testing.T) {
	raw := `{
		"_id": "665f1c",
		"title": "Hello",
		"content": "Body",
		"tags": ["go", "testing"],
		"user": {"_id": "u1", "name": "A", "username": "a"},
		"likes": ["u2"],
		"likesCount": 1,
		"comments": [{"_id": "c1", "content": "Nice", "user": {"_id": "u2", "name": "B", "username": "b"}}],
		"commentsCount": 1,
		"views": 12,
		"createdAt": "2026-01-02T03:04:05Z"
	}`

	var b Blog
	require.NoError(t, json.Unmarshal([]byte(raw), &b))

	assert.Equal(t, "665f1c", b.ID)
	assert.Equal(t, []string{"go", "testing"}, b.Tags)
	require.NotNil(t, b.User)
	assert.Equal(t, "a", b.User.Username)
	require.Len(t, b.Comments, 1)
	assert.Equal(t, "Nice", b.Comments[0].Content)
	assert.Equal(t, 12, b.Views)
}
