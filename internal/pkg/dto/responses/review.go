package responses

import "time"

type Review struct {
	ID         string    `json:"id"`
	DoctorID   string    `json:"doctor"`
	UserID     string    `json:"user"`
	ReviewText string    `json:"reviewText"`
	Rating     float64   `json:"rating"`
	CreatedAt  time.Time `json:"createdAt"`
}
