package requests

// CheckoutSession carries everything the booking flow needs from the inbound
// HTTP request: the authenticated user, the target doctor, and the pieces of
// the request URL used to build the gateway cancel redirect.
type CheckoutSession struct {
	UserID   string
	DoctorID string
	Scheme   string
	Host     string
}

// GatewaySession is the payload handed to the payment gateway service.
type GatewaySession struct {
	SuccessURL        string
	CancelURL         string
	CustomerEmail     string
	ClientReferenceID string
	// UnitAmount is in the smallest currency denomination.
	UnitAmount         int64
	Quantity           int64
	ProductName        string
	ProductDescription string
	ProductImages      []string
}
