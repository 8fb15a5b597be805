package gst

import (
	"regexp"
	"strconv"
)

// Defaults used when no numbering state has been stored yet, so the
// very first invoice defaults to INV-1001.
const (
	DefaultNumberPrefix = "INV-"
	DefaultLastNumber   = 1000
)

// invoiceNumberPattern splits a letter/hyphen prefix from a trailing
// digit run. Anything else (purely numeric, digits in the middle) is
// not a sequence-shaped number.
var invoiceNumberPattern = regexp.MustCompile(`^([A-Za-z\-]+)(\d+)$`)

// NextInvoiceNumber derives the default number for a new invoice from
// the stored prefix and last used sequence number.
func NextInvoiceNumber(prefix string, lastNumber int) string {
	return prefix + strconv.Itoa(lastNumber+1)
}

// ParseInvoiceNumber splits a user-entered invoice number back into
// its prefix and sequence number. ok is false when the string is not
// sequence-shaped; callers then leave the stored counter untouched.
// No monotonicity is enforced - the parsed number becomes the new
// counter even if it moves backward.
func ParseInvoiceNumber(number string) (prefix string, n int, ok bool) {
	m := invoiceNumberPattern.FindStringSubmatch(number)
	if m == nil {
		return "", 0, false
	}
	n, err := strconv.Atoi(m[2])
	if err != nil {
		// Digit runs too long for int are treated as non-matching.
		return "", 0, false
	}
	return m[1], n, true
}
