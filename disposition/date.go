package disposition

import (
	"fmt"
	"net/mail"
	"time"

	"github.com/araddon/dateparse"
)

// ParseTime parses the body of a date-valued parameter such as
// "creation-date" (RFC 2183). This will attempt to parse the date using the
// RFC 5322 format first and fall back to parsing it in many other formats.
func ParseTime(body string) (time.Time, error) {
	t, err := mail.ParseDate(body)
	if err == nil {
		return t, nil
	}

	t, err = dateparse.ParseAny(body)
	if err == nil {
		return t, nil
	}

	return t, fmt.Errorf("time string %q cannot be parsed", body)
}
