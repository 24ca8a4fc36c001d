package requests

type CreateReview struct {
	DoctorID   string  `json:"-"`
	UserID     string  `json:"-"`
	ReviewText string  `json:"reviewText" validate:"required,min=2"`
	Rating     float64 `json:"rating" validate:"required,gte=0,lte=5"`
}
