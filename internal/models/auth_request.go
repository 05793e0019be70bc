package models

// SignupRequest represents the request body for user signup.
// Fields are validated in the auth service so empty values produce the exact
// messages the frontend expects, not the binding library's defaults.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
