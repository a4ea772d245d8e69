package domain

import (
	"fmt"
	"time"
)

// Submission is a contact-form payload. It is validated, optionally
// forwarded and then discarded.
type Submission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// Result is the JSON body returned to the form.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

const (
	MsgSuccess     = "Thank you for your message! I'll get back to you soon."
	MsgServerError = "Something went wrong. Please try again later."
	MsgBadRequest  = "Invalid request body."
)

// RateLimitedMessage is the 429 message for a limiter with the given window,
// e.g. "Please try again in 15 minutes." Windows are rounded up to whole
// minutes, or shown in hours when they divide evenly.
func RateLimitedMessage(window time.Duration) string {
	return "Too many contact form submissions. Please try again in " + humanWindow(window) + "."
}

func humanWindow(d time.Duration) string {
	mins := int((d + time.Minute - 1) / time.Minute)
	if mins < 1 {
		mins = 1
	}
	if mins >= 60 && mins%60 == 0 {
		return plural(mins/60, "hour")
	}
	return plural(mins, "minute")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
