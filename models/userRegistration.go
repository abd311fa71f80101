package models

// RegisterUserRequest is the body of POST /api/auth/register.
type RegisterUserRequest struct {
	NID      string `json:"nid"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Password string `json:"password"`
}

// LoginRequest is the body of POST /api/auth/login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GoogleSignInRequest is the body of POST /api/auth/google.
type GoogleSignInRequest struct {
	IDToken string `json:"idToken"`
}

// AuthResponse is returned after a successful sign-in.
type AuthResponse struct {
	Token string      `json:"token"`
	User  UserSummary `json:"user"`
}
