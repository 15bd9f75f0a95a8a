package entity

import "time"

// ContentStatus enumerates the publish states of an article.
type ContentStatus string

const (
	ContentStatusDraft     ContentStatus = "draft"
	ContentStatusPublished ContentStatus = "published"
)

// DefaultContentAuthor is used when no author is supplied.
const DefaultContentAuthor = "Admin"

// Content is an admin-authored or AI-drafted article shown on the
// marketing site once published.
type Content struct {
	ID          int64         `json:"id"`
	Title       string        `json:"title"`
	Body        string        `json:"body"`
	Excerpt     string        `json:"excerpt,omitempty"`
	Author      string        `json:"author"`
	Status      ContentStatus `json:"status"`
	CreatedAt   time.Time     `json:"createdAt"`
	PublishedAt *time.Time    `json:"publishedAt,omitempty"`
}

// Draft is the outcome of an AI-assisted content generation call.
type Draft struct {
	Title   string `json:"title"`
	Body    string `json:"body"`
	Excerpt string `json:"excerpt"`
}
