package requests

type Register struct {
	Name           string `json:"name" validate:"required,min=2,max=60"`
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	Role           string `json:"role" validate:"required,oneof=patient doctor"`
	Phone          string `json:"phone,omitempty"`
	HashedPassword string `json:"-"`
}

type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type Logout struct {
	SessionID string
}
