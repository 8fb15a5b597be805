package gst

import "testing"

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string
	}{
		{"zero", 0, "Zero Rupees Only"},
		{"single_digit", 5, "Five Rupees Only"},
		{"teen", 17, "Seventeen Rupees Only"},
		{"tens", 40, "Forty Rupees Only"},
		{"tens_and_ones", 99, "Ninety Nine Rupees Only"},
		{"hundreds", 500, "Five Hundred Rupees Only"},
		{"thousand_and_ones", 1001, "One Thousand One Rupees Only"},
		{"with_paisa", 1001.50, "One Thousand One Rupees and Fifty Paisa Only"},
		{"exact_lakh", 100000, "One Lakh Rupees Only"},
		{"crore_mix", 12345678, "One Crore Twenty Three Lakh Forty Five Thousand Six Hundred Seventy Eight Rupees Only"},
		{"paisa_only_fraction", 236.05, "Two Hundred Thirty Six Rupees and Five Paisa Only"},
		{"hundreds_of_crore", 2500000000, "Two Hundred Fifty Crore Rupees Only"},
		{"fraction_carries_into_rupees", 1.999, "Two Rupees Only"},
		{"carry_from_zero_rupees", 0.999, "One Rupees Only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AmountToWords(tt.amount)
			if got != tt.want {
				t.Errorf("AmountToWords(%v) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestAmountToWords_PaisaRounding(t *testing.T) {
	// The fractional part is rounded to whole paisa before conversion.
	got := AmountToWords(10.499)
	want := "Ten Rupees and Fifty Paisa Only"
	if got != want {
		t.Errorf("AmountToWords(10.499) = %q, want %q", got, want)
	}
}
