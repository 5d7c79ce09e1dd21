package auth

import "testing"

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Str0ngPassword")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "Str0ngPassword" {
		t.Fatal("hash must not equal the plaintext password")
	}

	if !CheckPassword(hash, "Str0ngPassword") {
		t.Error("expected correct password to verify")
	}
	if CheckPassword(hash, "wrongPassword1") {
		t.Error("expected wrong password to fail verification")
	}
	if CheckPassword("not-a-bcrypt-hash", "Str0ngPassword") {
		t.Error("expected malformed hash to fail verification")
	}
}

func TestHashPasswordProducesUniqueSalts(t *testing.T) {
	first, err := HashPassword("Str0ngPassword")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	second, err := HashPassword("Str0ngPassword")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if first == second {
		t.Error("expected different hashes for the same password")
	}
}
