package models

type Review struct {
	ID         string  `bson:"_id,omitempty"`
	DoctorID   string  `bson:"doctor"`
	UserID     string  `bson:"user"`
	ReviewText string  `bson:"reviewText"`
	Rating     float64 `bson:"rating"`
	TimeModel  `bson:",inline"`
}
