package jwt

import (
	"strings"
	"testing"
	"time"

	"github.com/rylmat/auth-service/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret: "test-secret",
		TokenTTL:  7 * 24 * time.Hour,
	}
}

func TestTokenUtil_GenerateValidate(t *testing.T) {
	util := NewTokenUtil(testConfig())
	token, err := util.GenerateToken(42, "a@b.com")
	if err != nil {
		t.Fatal(err)
	}
	claims, err := util.ValidateToken(token)
	if err != nil {
		t.Fatal(err)
	}
	if claims.UserID != 42 || claims.Email != "a@b.com" {
		t.Fatalf("claims round-trip: got %d %s", claims.UserID, claims.Email)
	}
	if claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time) != 7*24*time.Hour {
		t.Fatalf("expiry must be 7 days after issuance, got %v",
			claims.ExpiresAt.Time.Sub(claims.IssuedAt.Time))
	}
}

func TestTokenUtil_Tampered(t *testing.T) {
	util := NewTokenUtil(testConfig())
	token, err := util.GenerateToken(1, "e@e")
	if err != nil {
		t.Fatal(err)
	}

	parts := strings.Split(token, ".")
	sig := []byte(parts[2])
	if sig[len(sig)-1] == 'A' {
		sig[len(sig)-1] = 'B'
	} else {
		sig[len(sig)-1] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := util.ValidateToken(tampered); err == nil {
		t.Fatal("expected tampered token to be rejected")
	}
}

func TestTokenUtil_Expired(t *testing.T) {
	util := NewTokenUtil(&config.Config{JWTSecret: "test-secret", TokenTTL: -time.Minute})
	token, err := util.GenerateToken(1, "e@e")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := util.ValidateToken(token); err == nil {
		t.Fatal("expected expired token to be rejected")
	}
}

func TestTokenUtil_WrongSecret(t *testing.T) {
	util := NewTokenUtil(testConfig())
	other := NewTokenUtil(&config.Config{JWTSecret: "other-secret", TokenTTL: time.Hour})
	token, _ := other.GenerateToken(1, "e@e")
	if _, err := util.ValidateToken(token); err == nil {
		t.Fatal("expected foreign signature to be rejected")
	}
}

func TestTokenUtil_InvalidAlg(t *testing.T) {
	util := NewTokenUtil(testConfig())
	token, _ := jwt.NewWithClaims(jwt.SigningMethodHS384, jwt.MapClaims{"sub": "1"}).
		SignedString([]byte("test-secret"))
	if _, err := util.ValidateToken(token); err == nil {
		t.Fatal("expected invalid alg")
	}
}

func TestTokenUtil_Garbage(t *testing.T) {
	util := NewTokenUtil(testConfig())
	if _, err := util.ValidateToken("not-a-token"); err == nil {
		t.Fatal("expected error")
	}
}
