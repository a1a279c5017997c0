// Package dto defines the request and response bodies of the versioned API.
// Request DTOs validate themselves before any store access happens; a
// non-empty message list means the request must be rejected with 400.
package dto

import (
	"fmt"
	"net/mail"
	"strings"
)

// missingFieldsMessage mirrors the message shape clients already depend on.
func missingFieldsMessage(fields []string) string {
	return fmt.Sprintf("The following information is not present in the api body: %s",
		strings.Join(fields, ", "))
}

func validEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}
