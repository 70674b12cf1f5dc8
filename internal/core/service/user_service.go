package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinichub/clinic-registry/internal/core/domain"
	"github.com/clinichub/clinic-registry/internal/core/ports"
)

// LoginLimiter abstracts the brute-force guard (Redis). A nil-safe no-op
// implementation is acceptable for tests.
type LoginLimiter interface {
	// TooManyFailures reports whether the username has exhausted its
	// failure budget for the current window.
	TooManyFailures(ctx context.Context, username string) (bool, error)
	// NoteFailure records one failed attempt.
	NoteFailure(ctx context.Context, username string) error
	// Reset clears the failure count after a successful login.
	Reset(ctx context.Context, username string) error
}

type userService struct {
	repo      ports.UserRepository
	limiter   LoginLimiter
	audit     ports.AuditTrail
	jwtSecret string
	tokenTTL  time.Duration
	log       zerolog.Logger
}

// NewUserService returns a UserService issuing HS256 tokens with the given
// secret and TTL. A non-positive TTL falls back to 24h.
func NewUserService(
	repo ports.UserRepository,
	limiter LoginLimiter,
	audit ports.AuditTrail,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) ports.UserService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &userService{
		repo:      repo,
		limiter:   limiter,
		audit:     audit,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		log:       log,
	}
}

// Save registers a new user when input.ID is zero, otherwise replaces the
// existing record. The username is normalized before any comparison or
// storage. Registration fails with ErrUsernameTaken when the normalized
// username exists; the lookup here is a fast path only — the repository's
// unique constraint is the real guarantee, so concurrent registrations of
// the same username race to exactly one winner.
func (s *userService) Save(ctx context.Context, input ports.UserInput) (*domain.User, error) {
	username := domain.NormalizeUsername(input.Username)

	if input.ID == 0 {
		if _, err := s.repo.FindByUsername(ctx, username); err == nil {
			return nil, domain.ErrUsernameTaken
		} else if !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}

		now := time.Now().UTC()
		created, err := s.repo.Create(ctx, &domain.User{
			Username:     username,
			PasswordHash: string(hash),
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			CreatedAt:    now,
			UpdatedAt:    now,
		})
		if err != nil {
			return nil, err
		}
		s.log.Info().Int64("user_id", created.ID).Str("username", username).Msg("user created")
		s.recordAudit(ctx, created.ID, domain.AuditCreated)
		return created, nil
	}

	existing, err := s.repo.FindByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	hash := existing.PasswordHash
	if input.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash = string(h)
	}

	updated, err := s.repo.Update(ctx, &domain.User{
		ID:           input.ID,
		Username:     username,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().Int64("user_id", updated.ID).Msg("user updated")
	s.recordAudit(ctx, updated.ID, domain.AuditUpdated)
	return updated, nil
}

func (s *userService) FindAll(ctx context.Context) ([]*domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *userService) FindOne(ctx context.Context, id int64) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *userService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Int64("user_id", id).Msg("user deleted")
	s.recordAudit(ctx, id, domain.AuditDeleted)
	return nil
}

// Login verifies the credentials and returns a signed bearer token. Unknown
// usernames and wrong passwords both fail with ErrInvalidCredentials so the
// response does not reveal which part was wrong. Limiter infrastructure
// errors are logged and ignored; throttling must not take logins down with it.
func (s *userService) Login(ctx context.Context, username, password string) (string, error) {
	username = domain.NormalizeUsername(username)
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	if blocked, err := s.limiter.TooManyFailures(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login limiter check failed, continuing")
	} else if blocked {
		return "", domain.ErrTooManyLoginAttempts
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.noteFailure(ctx, username)
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.noteFailure(ctx, username)
		return "", domain.ErrInvalidCredentials
	}

	if err := s.limiter.Reset(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login limiter reset failed")
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", err
	}

	s.log.Info().Str("username", username).Msg("login succeeded")
	return token, nil
}

func (s *userService) noteFailure(ctx context.Context, username string) {
	if err := s.limiter.NoteFailure(ctx, username); err != nil {
		s.log.Warn().Err(err).Str("username", username).Msg("login limiter update failed")
	}
}

func (s *userService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username": user.Username,
		"exp":      time.Now().Add(s.tokenTTL).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

func (s *userService) recordAudit(ctx context.Context, id int64, action string) {
	s.audit.Record(ports.AuditEventInput{
		RecordKind: domain.KindUser,
		RecordID:   id,
		Action:     action,
		Actor:      ports.ActorFrom(ctx),
		OccurredAt: time.Now().UTC(),
	})
}
