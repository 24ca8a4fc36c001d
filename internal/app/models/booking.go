package models

// Booking links a user and a doctor to a payment checkout session. The
// ticket price is a snapshot taken at booking time; later doctor price
// changes do not touch existing bookings. A booking exists once a checkout
// session exists, which is earlier than payment settlement.
type Booking struct {
	ID          string `bson:"_id,omitempty"`
	DoctorID    string `bson:"doctor"`
	UserID      string `bson:"user"`
	TicketPrice int64  `bson:"ticketPrice"`
	SessionID   string `bson:"session"`
	Status      string `bson:"status"`
	IsPaid      bool   `bson:"isPaid"`
	TimeModel   `bson:",inline"`
}
