package service

import (
	"context"
	"errors"
	"testing"
	"time"

	pkgcrypto "github.com/taskbox/taskbox/internal/crypto"
	"github.com/taskbox/taskbox/internal/errs"
	"github.com/taskbox/taskbox/internal/model"
	"github.com/taskbox/taskbox/internal/repository"
	"github.com/taskbox/taskbox/internal/token"
)

type fakeUsers struct {
	byName map[string]*model.User

	createErr error
	getErr    error
}

var _ repository.UserRepository = (*fakeUsers)(nil)

func (f *fakeUsers) Create(_ context.Context, u *model.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	if f.byName == nil {
		f.byName = map[string]*model.User{}
	}
	if _, exists := f.byName[u.Username]; exists {
		return errs.ErrAlreadyExists
	}
	cpy := *u
	f.byName[u.Username] = &cpy
	return nil
}
func (f *fakeUsers) GetByID(_ context.Context, id int) (*model.User, error) {
	for _, u := range f.byName {
		if u.ID == id {
			c := *u
			return &c, nil
		}
	}
	return nil, errs.ErrNotFound
}
func (f *fakeUsers) GetByUsername(_ context.Context, username string) (*model.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	u, ok := f.byName[username]
	if !ok {
		return nil, errs.ErrNotFound
	}
	c := *u
	return &c, nil
}

func testUser(t *testing.T, id int, username, password string) *model.User {
	t.Helper()
	h, err := pkgcrypto.HashPassword(password)
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	return &model.User{ID: id, Username: username, PasswordHash: h, Email: username + "@test.com"}
}

func TestAuth_Login_MissingCredentials(t *testing.T) {
	t.Parallel()
	s := NewAuthService(&fakeUsers{}, token.NewCodec([]byte("k")), time.Minute)

	for _, tc := range []struct{ user, pass string }{
		{"", ""},
		{"alice", ""},
		{"", "pwd"},
	} {
		if _, _, err := s.Login(context.Background(), tc.user, tc.pass); !errors.Is(err, errs.ErrMissingCredentials) {
			t.Fatalf("Login(%q,%q): want ErrMissingCredentials, got %v", tc.user, tc.pass, err)
		}
	}
}

func TestAuth_Login_Success(t *testing.T) {
	t.Parallel()
	u := testUser(t, 3, "alice", "correct")
	users := &fakeUsers{byName: map[string]*model.User{"alice": u}}
	codec := token.NewCodec([]byte("secret"))
	s := NewAuthService(users, codec, 2*time.Minute)

	tok, got, err := s.Login(context.Background(), "alice", "correct")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if got.ID != 3 || got.Username != "alice" {
		t.Fatalf("user mismatch: %+v", got)
	}

	claims, err := codec.Verify(tok)
	if err != nil {
		t.Fatalf("Verify issued token: %v", err)
	}
	if claims.UserID != 3 || claims.Username != "alice" {
		t.Fatalf("claims mismatch: %+v", claims)
	}
}

func TestAuth_Login_BadCredentialsIndistinguishable(t *testing.T) {
	t.Parallel()
	u := testUser(t, 1, "alice", "correct")
	users := &fakeUsers{byName: map[string]*model.User{"alice": u}}
	s := NewAuthService(users, token.NewCodec([]byte("k")), time.Minute)

	_, _, errUnknown := s.Login(context.Background(), "nobody", "whatever")
	_, _, errWrongPw := s.Login(context.Background(), "alice", "wrong")

	if !errors.Is(errUnknown, errs.ErrInvalidCredentials) {
		t.Fatalf("unknown user: want ErrInvalidCredentials, got %v", errUnknown)
	}
	if !errors.Is(errWrongPw, errs.ErrInvalidCredentials) {
		t.Fatalf("wrong password: want ErrInvalidCredentials, got %v", errWrongPw)
	}
	if errUnknown.Error() != errWrongPw.Error() {
		t.Fatalf("credential failures must be indistinguishable: %v vs %v", errUnknown, errWrongPw)
	}
}

func TestAuth_Login_RepoErrorMasked(t *testing.T) {
	t.Parallel()
	users := &fakeUsers{getErr: errors.New("boom")}
	s := NewAuthService(users, token.NewCodec([]byte("k")), time.Minute)

	if _, _, err := s.Login(context.Background(), "alice", "pwd"); !errors.Is(err, errs.ErrInvalidCredentials) {
		t.Fatalf("lookup error must be masked as ErrInvalidCredentials, got %v", err)
	}
}
