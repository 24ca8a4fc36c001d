package utils

import (
	"fmt"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/dto/requests"
	"strings"
)

func BuildBookingConfirmationEmailPayload(fromEmail, toEmail, userName, doctorName, currency string, ticketPrice int64, sessionID string) *requests.EmailPayload {
	body := fmt.Sprintf(
		constvars.EmailBodyBookingConfirmation,
		userName,
		doctorName,
		ticketPrice,
		strings.ToUpper(currency),
		sessionID,
	)

	return &requests.EmailPayload{
		Subject: constvars.EmailBookingConfirmationSubject,
		From:    fromEmail,
		To:      []string{toEmail},
		Body:    body,
	}
}
