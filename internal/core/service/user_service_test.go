package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinichub/clinic-registry/internal/core/domain"
	"github.com/clinichub/clinic-registry/internal/core/ports"
)

type stubUserRepo struct {
	byID   map[int64]*domain.User
	nextID int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[int64]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.byID {
		if existing.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = r.nextID
	r.byID[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	user, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, user := range r.byID {
		if user.Username == username {
			return cloneUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]*domain.User, error) {
	var out []*domain.User
	for id := int64(1); id <= r.nextID; id++ {
		if user, ok := r.byID[id]; ok {
			out = append(out, cloneUser(user))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.byID[user.ID]; !ok {
		return nil, domain.ErrUserNotFound
	}
	for id, existing := range r.byID {
		if id != user.ID && existing.Username == user.Username {
			return nil, domain.ErrUsernameTaken
		}
	}
	r.byID[user.ID] = cloneUser(user)
	return cloneUser(user), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	return nil
}

// stubLimiter is a controllable LoginLimiter.
type stubLimiter struct {
	blocked  bool
	failures int
	resets   int
}

func (l *stubLimiter) TooManyFailures(_ context.Context, _ string) (bool, error) {
	return l.blocked, nil
}

func (l *stubLimiter) NoteFailure(_ context.Context, _ string) error {
	l.failures++
	return nil
}

func (l *stubLimiter) Reset(_ context.Context, _ string) error {
	l.resets++
	return nil
}

func newUserServiceForTest(repo ports.UserRepository, limiter LoginLimiter) ports.UserService {
	return NewUserService(repo, limiter, &stubAuditTrail{}, "secret", time.Hour, zerolog.Nop())
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func TestUserService_Save_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserServiceForTest(repo, &stubLimiter{})

	user, err := svc.Save(context.Background(), ports.UserInput{
		Username: "alice", Password: "pass123", FirstName: "Alice", LastName: "Doe",
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Save_NormalizesUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserServiceForTest(repo, &stubLimiter{})

	user, err := svc.Save(context.Background(), ports.UserInput{Username: "  Alice ", Password: "pass123"})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}
	if user.Username != "alice" {
		t.Fatalf("expected normalized username, got %q", user.Username)
	}
}

func TestUserService_Save_DuplicateAfterNormalization(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserServiceForTest(repo, &stubLimiter{})

	if _, err := svc.Save(context.Background(), ports.UserInput{Username: "Bob", Password: "pass123"}); err != nil {
		t.Fatalf("first registration failed: %v", err)
	}
	// "bob " and "Bob" normalize to the same username.
	if _, err := svc.Save(context.Background(), ports.UserInput{Username: "bob ", Password: "other456"}); err != domain.ErrUsernameTaken {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
}

func TestUserService_Save_UpdateKeepsPasswordWhenEmpty(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserServiceForTest(repo, &stubLimiter{})

	created, err := svc.Save(context.Background(), ports.UserInput{Username: "carol", Password: "s3cret", FirstName: "C"})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}

	updated, err := svc.Save(context.Background(), ports.UserInput{
		ID: created.ID, Username: "carol", FirstName: "Carol", LastName: "Jones",
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.FirstName != "Carol" || updated.LastName != "Jones" {
		t.Fatalf("unexpected user: %+v", updated)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("s3cret")); err != nil {
		t.Fatalf("password hash should be unchanged: %v", err)
	}
}

func TestUserService_Save_UpdateMissingID(t *testing.T) {
	svc := newUserServiceForTest(newStubUserRepo(), &stubLimiter{})

	if _, err := svc.Save(context.Background(), ports.UserInput{ID: 99, Username: "ghost"}); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc := newUserServiceForTest(repo, limiter)

	if _, err := svc.Save(context.Background(), ports.UserInput{Username: "bob", Password: "s3cret"}); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	token, err := svc.Login(context.Background(), "bob", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if limiter.resets != 1 {
		t.Fatalf("expected limiter reset, got %d", limiter.resets)
	}

	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token invalid: %v", err)
	}
	if claims["username"] != "bob" {
		t.Fatalf("expected username claim bob, got %v", claims["username"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Fatalf("expected exp claim")
	}
}

func TestUserService_Login_CaseInsensitiveUsername(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserServiceForTest(repo, &stubLimiter{})

	_, _ = svc.Save(context.Background(), ports.UserInput{Username: "bob", Password: "s3cret"})

	if _, err := svc.Login(context.Background(), "  Bob ", "s3cret"); err != nil {
		t.Fatalf("login with unnormalized username failed: %v", err)
	}
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	limiter := &stubLimiter{}
	svc := newUserServiceForTest(repo, limiter)

	_, _ = svc.Save(context.Background(), ports.UserInput{Username: "bob", Password: "goodpass"})

	if _, err := svc.Login(context.Background(), "bob", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
	if limiter.failures != 1 {
		t.Fatalf("expected one recorded failure, got %d", limiter.failures)
	}
}

func TestUserService_Login_UnknownUser(t *testing.T) {
	svc := newUserServiceForTest(newStubUserRepo(), &stubLimiter{})

	if _, err := svc.Login(context.Background(), "nobody", "x"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestUserService_Login_Throttled(t *testing.T) {
	repo := newStubUserRepo()
	svc := newUserServiceForTest(repo, &stubLimiter{blocked: true})

	_, _ = svc.Save(context.Background(), ports.UserInput{Username: "bob", Password: "s3cret"})

	if _, err := svc.Login(context.Background(), "bob", "s3cret"); err != domain.ErrTooManyLoginAttempts {
		t.Fatalf("expected ErrTooManyLoginAttempts, got %v", err)
	}
}
