package token

import (
	"errors"
	"testing"
	"time"

	"github.com/taskbox/taskbox/internal/errs"
	"github.com/taskbox/taskbox/internal/model"
)

func TestCodec_IssueVerify_RoundTrip(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("test-secret"))
	u := model.User{ID: 7, Username: "alice", Email: "alice@test.com"}

	raw, err := c.Issue(u, time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}

	claims, err := c.Verify(raw)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.UserID != 7 || claims.Username != "alice" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
	if claims.ExpiresAt == nil || !claims.ExpiresAt.After(time.Now()) {
		t.Fatalf("expiry not in the future: %v", claims.ExpiresAt)
	}
}

func TestCodec_Verify_WrongKey(t *testing.T) {
	t.Parallel()

	raw, err := NewCodec([]byte("key-a")).Issue(model.User{ID: 1, Username: "admin"}, time.Minute)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if _, err := NewCodec([]byte("key-b")).Verify(raw); !errors.Is(err, errs.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken for foreign signature, got %v", err)
	}
}

func TestCodec_Verify_Malformed(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("k"))
	for _, raw := range []string{"", "garbage", "a.b.c"} {
		if _, err := c.Verify(raw); !errors.Is(err, errs.ErrInvalidToken) {
			t.Fatalf("Verify(%q): want ErrInvalidToken, got %v", raw, err)
		}
	}
}

func TestCodec_Verify_Expired(t *testing.T) {
	t.Parallel()

	c := NewCodec([]byte("k"))
	raw, err := c.Issue(model.User{ID: 1, Username: "admin"}, time.Millisecond)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	if _, err := c.Verify(raw); !errors.Is(err, errs.ErrInvalidToken) {
		t.Fatalf("want ErrInvalidToken for expired token, got %v", err)
	}
}
