package domain

// AdminUser is the authenticated admin identity as reported by the backend's
// account endpoint. This service stores no users of its own.
type AdminUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}
