package services

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmountToPaise(t *testing.T) {
	tests := []struct {
		name  string
		total float64
		want  int
	}{
		{"whole_rupees", 236, 23600},
		{"just_below_integer_paise", 19.99, 1999},
		{"binary_float_shortfall", 1.15, 115},
		{"single_paisa", 0.01, 1},
		{"half_paisa_rounds_up", 10.005, 1001},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, amountToPaise(tt.total))
		})
	}
}

func TestVerifyWebhookSignature(t *testing.T) {
	svc := NewPaymentService("key", "secret", "whsec", nil)
	body := []byte(`{"event":"payment_link.paid"}`)

	mac := hmac.New(sha256.New, []byte("whsec"))
	mac.Write(body)
	valid := hex.EncodeToString(mac.Sum(nil))

	assert.True(t, svc.VerifyWebhookSignature(body, valid))
	assert.False(t, svc.VerifyWebhookSignature(body, "deadbeef"))
	assert.False(t, svc.VerifyWebhookSignature([]byte("tampered"), valid))

	unsecured := NewPaymentService("key", "secret", "", nil)
	assert.True(t, unsecured.VerifyWebhookSignature(body, "anything"),
		"verification is skipped when no webhook secret is configured")
}
