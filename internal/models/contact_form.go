package models

// ContactFormRequest is a public enquiry forwarded to the site admins
type ContactFormRequest struct {
	FirstName string `json:"firstName" binding:"required,max=100"`
	LastName  string `json:"lastName" binding:"required,max=100"`
	Email     string `json:"email" binding:"required,email,max=255"`
	Phone     string `json:"phone" binding:"omitempty,max=32"`
	Details   string `json:"details" binding:"required,max=5000"`
}
