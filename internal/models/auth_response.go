package models

// UserResponse is the sanitized user representation returned after signup.
// The password hash never appears here.
type UserResponse struct {
	ID    string `json:"_id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// SignupResponse represents the response after successful signup
type SignupResponse struct {
	User      UserResponse `json:"user"`
	AuthToken string       `json:"authToken"`
}

// LoginResponse returns the token only; login does not echo user details
type LoginResponse struct {
	AuthToken string `json:"authToken"`
}
