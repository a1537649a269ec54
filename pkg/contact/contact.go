package contact

import "time"

// ContactRequest is write-only from the application's perspective:
// the UI inserts, nothing reads it back.
type ContactRequest struct {
	Id        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
