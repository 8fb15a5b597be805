package auth

import "testing"

func TestHashAndVerifyPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword failed: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !VerifyPassword(hash, "s3cret-pass") {
		t.Error("correct password should verify")
	}
	if VerifyPassword(hash, "wrong-pass") {
		t.Error("wrong password should not verify")
	}
}
