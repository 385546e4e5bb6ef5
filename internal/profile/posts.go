package profile

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

var (
	ErrEmptyContent = errors.New("post content is empty")
	ErrPostNotFound = errors.New("post not found")
)

// NewPost builds a post with a fresh ID. Content and media description are
// trimmed; blank content is rejected.
func NewPost(content string, featured bool, mediaDescription string) (Post, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return Post{}, ErrEmptyContent
	}
	return Post{
		ID:               uuid.New().String(),
		Content:          content,
		IsFeatured:       featured,
		MediaDescription: strings.TrimSpace(mediaDescription),
	}, nil
}

func indexOfPost(posts []Post, id string) int {
	for i, p := range posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

func copyPosts(posts []Post) []Post {
	cp := make([]Post, len(posts))
	copy(cp, posts)
	return cp
}
