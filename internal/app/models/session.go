package models

// Session is what the auth flow stores in redis, keyed by session ID.
type Session struct {
	UserID string `json:"user_id"`
	Role   string `json:"role"`
	Email  string `json:"email"`
}
