package constvars

const (
	EmailBookingConfirmationSubject = "[MediBook] Appointment booking received"
)

const (
	EmailSendBasicEmailSubjectFormat = "To: %s\r\nSubject: %s\r\n\r\n%s\r\n"
	EmailSendHTMLSubjectFormat       = "To: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s\r\n"

	EmailBodyBookingConfirmation = "Hi %s,\r\n\r\nYour booking with %s has been received. We will confirm your appointment once the payment is settled.\r\n\r\nBooked price: %d %s\r\nPayment reference: %s\r\n"
)

const RegexEmail = `^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`
