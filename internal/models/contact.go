package models

import "time"

// Contact is a contact-form submission document. Attribute names match the
// collection schema written by the public site.
type Contact struct {
	ID        string    `json:"-"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	CompanyName string `json:"companyname"`
	Service     string `json:"service"`
	Message     string `json:"message"`
}
