package responses

type UserProfile struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Photo     string `json:"photo,omitempty"`
	Gender    string `json:"gender,omitempty"`
	BloodType string `json:"bloodType,omitempty"`
}
