package constvars

const (
	APIWorkingMessage = "API is working."

	RegisterSuccessMessage      = "Successfully registered"
	LoginSuccessMessage         = "Successfully logged in"
	LogoutSuccessMessage        = "Successfully logged out"
	GetProfileSuccessMessage    = "Successfully retrieved profile"
	UpdateProfileSuccessMessage = "Successfully updated profile"
	GetDoctorsSuccessMessage    = "Successfully retrieved doctors"
	GetDoctorSuccessMessage     = "Successfully retrieved doctor"
	GetReviewsSuccessMessage    = "Successfully retrieved reviews"
	CreateReviewSuccessMessage  = "Successfully submitted review"
	GetBookingsSuccessMessage   = "Successfully retrieved bookings"

	// Kept as the platform has always phrased it, even though only a
	// checkout session exists at this point (see DESIGN.md).
	CheckoutSuccessMessage = "Successfully Paid"
)
