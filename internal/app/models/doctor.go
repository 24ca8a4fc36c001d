package models

type Doctor struct {
	ID       string `bson:"_id,omitempty"`
	Email    string `bson:"email"`
	Password string `bson:"password"`
	Name     string `bson:"name"`
	Phone    string `bson:"phone,omitempty"`
	Photo    string `bson:"photo,omitempty"`

	// TicketPrice is in whole currency units; it is multiplied by 100 on
	// the way to the payment gateway.
	TicketPrice    int64    `bson:"ticketPrice"`
	Specialization string   `bson:"specialization,omitempty"`
	Qualifications []string `bson:"qualifications,omitempty"`
	Experiences    []string `bson:"experiences,omitempty"`
	Bio            string   `bson:"bio,omitempty"`
	About          string   `bson:"about,omitempty"`
	TimeSlots      []string `bson:"timeSlots,omitempty"`
	AverageRating  float64  `bson:"averageRating"`
	TotalRating    int      `bson:"totalRating"`
	IsApproved     bool     `bson:"isApproved"`
	TimeModel      `bson:",inline"`
}
