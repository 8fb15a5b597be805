package gst

import (
	"math"
	"strings"
)

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
}

var teenWords = []string{
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}

// threeDigitWords converts 0-999 to words with a trailing space per word,
// e.g. 245 -> "Two Hundred Forty Five ". Zero yields "".
func threeDigitWords(n int64) string {
	var b strings.Builder
	if n >= 100 {
		b.WriteString(onesWords[n/100])
		b.WriteString(" Hundred ")
		n %= 100
	}
	switch {
	case n >= 10 && n <= 19:
		b.WriteString(teenWords[n-10])
		b.WriteString(" ")
	case n >= 20:
		b.WriteString(tensWords[n/10])
		b.WriteString(" ")
		if n%10 > 0 {
			b.WriteString(onesWords[n%10])
			b.WriteString(" ")
		}
	case n >= 1:
		b.WriteString(onesWords[n])
		b.WriteString(" ")
	}
	return b.String()
}

// rupeeWords renders a whole rupee amount with Indian grouping:
// Crore, Lakh, Thousand, then the 0-999 remainder. Amounts of a
// thousand crore and up are not regrouped into Arab/Kharab; the
// crore figure just grows.
func rupeeWords(rupees int64) string {
	if rupees == 0 {
		return "Zero "
	}

	var b strings.Builder
	if crore := rupees / 10000000; crore > 0 {
		b.WriteString(threeDigitWords(crore))
		b.WriteString("Crore ")
		rupees %= 10000000
	}
	if lakh := rupees / 100000; lakh > 0 {
		b.WriteString(threeDigitWords(lakh))
		b.WriteString("Lakh ")
		rupees %= 100000
	}
	if thousand := rupees / 1000; thousand > 0 {
		b.WriteString(threeDigitWords(thousand))
		b.WriteString("Thousand ")
		rupees %= 1000
	}
	b.WriteString(threeDigitWords(rupees))
	return b.String()
}

// AmountToWords renders a non-negative monetary amount as the legal
// words line printed on the invoice, e.g.
// "One Thousand One Rupees and Fifty Paisa Only". The paisa clause is
// omitted when the fraction rounds to zero.
func AmountToWords(amount float64) string {
	rupees := int64(amount)
	paisa := int64(math.Round((amount - float64(rupees)) * 100))
	if paisa == 100 {
		// A fraction of .995 and up is a whole extra rupee.
		rupees++
		paisa = 0
	}

	words := strings.TrimSpace(rupeeWords(rupees)) + " Rupees"
	if paisa > 0 {
		return words + " and " + strings.TrimSpace(threeDigitWords(paisa)) + " Paisa Only"
	}
	return words + " Only"
}
