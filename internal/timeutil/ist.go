package timeutil

import (
	"time"
)

// IST is the Indian Standard Time location. All invoice dates are
// recorded and printed in IST regardless of the server's zone.
var IST *time.Location

func init() {
	var err error
	IST, err = time.LoadLocation("Asia/Kolkata")
	if err != nil {
		IST = time.FixedZone("IST", 5*60*60+30*60) // UTC+5:30
	}
}

// DateLayout is the wire format for invoice dates.
const DateLayout = "2006-01-02"

// Now returns the current time in IST.
func Now() time.Time {
	return time.Now().In(IST)
}

// ParseInIST parses a value like an invoice date in the IST zone.
func ParseInIST(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, IST)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// FormatIST formats a time in IST for display on invoices and exports.
func FormatIST(t time.Time, layout string) string {
	return t.In(IST).Format(layout)
}
