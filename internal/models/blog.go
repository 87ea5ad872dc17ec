package models

import "time"

// BlogPost is a blog article document. author_id keeps the snake_case key
// the original collection was created with.
type BlogPost struct {
	ID        string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	Published     bool   `json:"published"`
	AuthorID      string `json:"author_id"`
	FeaturedImage string `json:"featuredImage"`
}
