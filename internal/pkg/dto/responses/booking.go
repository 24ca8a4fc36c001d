package responses

import "time"

// CheckoutSession is the gateway-issued session as returned to the client.
type CheckoutSession struct {
	ID            string `json:"id"`
	URL           string `json:"url"`
	PaymentStatus string `json:"payment_status,omitempty"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
	CustomerEmail string `json:"customer_email,omitempty"`
}

type Booking struct {
	ID          string    `json:"id"`
	DoctorID    string    `json:"doctor"`
	DoctorName  string    `json:"doctorName,omitempty"`
	UserID      string    `json:"user"`
	TicketPrice int64     `json:"ticketPrice"`
	Session     string    `json:"session"`
	Status      string    `json:"status"`
	IsPaid      bool      `json:"isPaid"`
	CreatedAt   time.Time `json:"createdAt"`
}
