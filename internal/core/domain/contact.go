package domain

// Contact is a contact-form submission from the public site. The admin panel
// only reads and deletes these.
type Contact struct {
	DocumentFields
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	CompanyName string `json:"companyName"`
	Service     string `json:"service"`
	Message     string `json:"message"`
}
