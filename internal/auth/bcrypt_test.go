package auth

import "testing"

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	t.Parallel()

	h := NewBcryptHasher()

	hash, err := h.Hash("password123")
	if err != nil {
		t.Fatalf("Hash error: %v", err)
	}
	if hash == "password123" {
		t.Fatalf("hash must not equal the plain password")
	}

	if !h.Verify(hash, "password123") {
		t.Fatalf("expected correct password to verify")
	}
	if h.Verify(hash, "wrong-password") {
		t.Fatalf("expected wrong password to fail verification")
	}
}
