package domain

// BlogPost is an article managed from the admin panel. FeaturedImage holds a
// file ID in the blog images bucket (resolved to a view URL at the edge).
type BlogPost struct {
	DocumentFields
	Title         string `json:"title"`
	Slug          string `json:"slug"`
	Content       string `json:"content"`
	Excerpt       string `json:"excerpt"`
	Published     bool   `json:"published"`
	AuthorID      string `json:"authorId"`
	FeaturedImage string `json:"featuredImage"`
}
