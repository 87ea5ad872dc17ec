package domain

import "time"

// DocumentFields holds the identity and timestamps assigned by the document
// store. ID is empty until the entity has been persisted.
type DocumentFields struct {
	ID        string    `json:"id,omitempty"`
	CreatedAt time.Time `json:"createdAt,omitempty"`
	UpdatedAt time.Time `json:"updatedAt,omitempty"`
}
