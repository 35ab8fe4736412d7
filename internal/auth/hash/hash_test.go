package hash

import "testing"

func TestHasher_FreshSaltPerCall(t *testing.T) {
	h := NewArgon2Hasher()
	d1, err := h.Hash("password1")
	if err != nil {
		t.Fatal(err)
	}
	d2, err := h.Hash("password1")
	if err != nil {
		t.Fatal(err)
	}
	if d1 == d2 {
		t.Fatal("two hashes of the same password must differ")
	}
	if d1 == "password1" {
		t.Fatal("digest must not equal the plaintext")
	}
}

func TestHasher_Verify(t *testing.T) {
	h := NewArgon2Hasher()
	digest, err := h.Hash("correct horse")
	if err != nil {
		t.Fatal(err)
	}

	ok, err := h.Verify("correct horse", digest)
	if err != nil || !ok {
		t.Fatalf("expected match, got ok=%v err=%v", ok, err)
	}

	ok, err = h.Verify("wrong horse", digest)
	if err != nil {
		t.Fatalf("mismatch must not error: %v", err)
	}
	if ok {
		t.Fatal("expected mismatch")
	}
}
