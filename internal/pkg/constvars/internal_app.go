package constvars

// Mongo collection names.
const (
	MongoCollectionUsers    = "users"
	MongoCollectionDoctors  = "doctors"
	MongoCollectionReviews  = "reviews"
	MongoCollectionBookings = "bookings"
)

// Account roles.
const (
	RolePatient = "patient"
	RoleDoctor  = "doctor"
)

// Booking statuses.
const (
	BookingStatusPending   = "pending"
	BookingStatusApproved  = "approved"
	BookingStatusCancelled = "cancelled"
)

// ContextKey is the type for values this service stores on a request context.
type ContextKey string

const (
	ContextUserIDKey    ContextKey = "userId"
	ContextUserRoleKey  ContextKey = "userRole"
	ContextRequestIDKey ContextKey = "requestId"
)

const (
	SessionKeyPrefix        = "session:"
	CheckoutSuccessURLPath  = "/checkout-success"
	CheckoutCancelURLFormat = "%s://%s/doctors/%s"
)
