package handlers

import "testing"

func TestPasswordHashing(t *testing.T) {
	password := "pass123"
	hash, err := hashPassword(password)
	if err != nil {
		t.Fatalf("hashPassword failed: %v", err)
	}
	if hash == "" {
		t.Fatal("expected non-empty hash")
	}
	if err := verifyPassword(hash, password); err != nil {
		t.Fatalf("verifyPassword should succeed: %v", err)
	}
	if err := verifyPassword(hash, "wrong-pass"); err == nil {
		t.Fatal("verifyPassword should fail for wrong password")
	}
}

func TestRolesClosedSet(t *testing.T) {
	for _, role := range []string{"admin", "manager", "user"} {
		if !roles[role] {
			t.Fatalf("%q should be a known role", role)
		}
	}
	for _, role := range []string{"owner", "superadmin", ""} {
		if roles[role] {
			t.Fatalf("%q should not be a known role", role)
		}
	}
}
