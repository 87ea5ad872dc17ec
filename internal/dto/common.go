package dto

// ListParams defines the query parameters shared by every listing endpoint.
// Cursor is an opaque token from a previous page's nextCursor.
type ListParams struct {
	Limit  int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	Cursor string `form:"cursor"`
}
