package auth

import (
	"encoding/base64"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/polkiloo/freelancehub/internal/domain/model"
)

func strategies() []Strategy {
	return []Strategy{
		NewHMACStrategy("secret", Options{TTL: time.Minute}),
		NewJWTStrategy("secret", Options{TTL: time.Minute}),
	}
}

func TestStrategiesRoundTrip(t *testing.T) {
	for _, s := range strategies() {
		t.Run(s.Name(), func(t *testing.T) {
			for _, role := range []model.Role{model.RoleClient, model.RoleFreelancer} {
				actor := model.Actor{ID: uuid.New(), Role: role}
				token, err := s.IssueToken(actor)
				if err != nil {
					t.Fatalf("issue token: %v", err)
				}
				got, err := s.ParseToken(token)
				if err != nil {
					t.Fatalf("parse token: %v", err)
				}
				if got != actor {
					t.Fatalf("expected %+v, got %+v", actor, got)
				}
			}
		})
	}
}

func TestStrategiesRejectGarbage(t *testing.T) {
	for _, s := range strategies() {
		t.Run(s.Name(), func(t *testing.T) {
			for _, token := range []string{"", "not-a-token", "a.b.c"} {
				if _, err := s.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
					t.Fatalf("token %q: expected ErrInvalidToken, got %v", token, err)
				}
			}
			if _, err := s.IssueToken(model.Actor{ID: uuid.New()}); err == nil {
				t.Fatal("expected error issuing token without role")
			}
		})
	}
}

func TestStrategiesRejectForeignSecret(t *testing.T) {
	actor := model.Actor{ID: uuid.New(), Role: model.RoleClient}
	pairs := [][2]Strategy{
		{NewHMACStrategy("one", Options{}), NewHMACStrategy("two", Options{})},
		{NewJWTStrategy("one", Options{}), NewJWTStrategy("two", Options{})},
	}
	for _, pair := range pairs {
		token, err := pair[0].IssueToken(actor)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		if _, err := pair[1].ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", pair[1].Name(), err)
		}
	}
}

func TestStrategiesRejectExpired(t *testing.T) {
	actor := model.Actor{ID: uuid.New(), Role: model.RoleFreelancer}

	h := NewHMACStrategy("secret", Options{TTL: time.Minute})
	j := NewJWTStrategy("secret", Options{TTL: time.Minute})
	past := func() time.Time { return time.Now().Add(-time.Hour) }
	h.now, j.now = past, past

	for _, s := range []Strategy{h, j} {
		token, err := s.IssueToken(actor)
		if err != nil {
			t.Fatalf("issue token: %v", err)
		}
		switch v := s.(type) {
		case *HMACStrategy:
			v.now = time.Now
		case *JWTStrategy:
			v.now = time.Now
		}
		if _, err := s.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("%s: expected expired token to be rejected, got %v", s.Name(), err)
		}
	}
}

func TestHMACStrategyTamperedPayload(t *testing.T) {
	s := NewHMACStrategy("secret", Options{TTL: time.Minute})
	token, err := s.IssueToken(model.Actor{ID: uuid.New(), Role: model.RoleClient})
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		t.Fatalf("decode token: %v", err)
	}
	parts := strings.Split(string(raw), ":")
	parts[1] = "freelancer"
	tampered := base64.RawURLEncoding.EncodeToString([]byte(strings.Join(parts, ":")))
	if _, err := s.ParseToken(tampered); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestHMACStrategySignedButMalformedFields(t *testing.T) {
	s := NewHMACStrategy("secret", Options{})
	exp := time.Now().Add(time.Minute).Unix()
	payloads := []string{
		fmt.Sprintf("not-a-uuid:client:%d", exp),
		fmt.Sprintf("%s:admin:%d", uuid.New(), exp),
		fmt.Sprintf("%s:client:soon", uuid.New()),
	}
	for _, payload := range payloads {
		token := base64.RawURLEncoding.EncodeToString([]byte(payload + ":" + s.sign(payload)))
		if _, err := s.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
			t.Fatalf("payload %q: expected ErrInvalidToken, got %v", payload, err)
		}
	}
}

func TestJWTStrategyRejectsOtherAlgorithms(t *testing.T) {
	s := NewJWTStrategy("secret", Options{})
	claims := jwtClaims{
		UserID: uuid.NewString(),
		Role:   "client",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Minute)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := s.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestJWTStrategyRequiresExpiry(t *testing.T) {
	s := NewJWTStrategy("secret", Options{})
	claims := jwtClaims{UserID: uuid.NewString(), Role: "client"}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if _, err := s.ParseToken(token); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestStrategyNames(t *testing.T) {
	if NewHMACStrategy("s", Options{}).Name() != "hmac" {
		t.Fatal("unexpected hmac name")
	}
	if NewJWTStrategy("s", Options{}).Name() != "jwt" {
		t.Fatal("unexpected jwt name")
	}
}
