package dto

// AuthData is the payload returned by successful register and login calls.
type AuthData struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Token string `json:"token"`
}
