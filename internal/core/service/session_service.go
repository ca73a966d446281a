package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/AshuKumar2005/CityAcces/internal/core/domain"
	"github.com/AshuKumar2005/CityAcces/internal/core/ports"
)

const defaultTokenTTL = 24 * time.Hour

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// SessionService signs users in and out and opens per-request sessions.
type SessionService struct {
	identities  ports.IdentityRepository
	profiles    ports.ProfileRepository
	revocations ports.RevocationStore
	jwtSecret   []byte
	tokenTTL    time.Duration
	log         zerolog.Logger
	now         func() time.Time
}

func NewSessionService(
	identities ports.IdentityRepository,
	profiles ports.ProfileRepository,
	revocations ports.RevocationStore,
	jwtSecret string,
	tokenTTL time.Duration,
	log zerolog.Logger,
) *SessionService {
	if tokenTTL <= 0 {
		tokenTTL = defaultTokenTTL
	}
	return &SessionService{
		identities:  identities,
		profiles:    profiles,
		revocations: revocations,
		jwtSecret:   []byte(jwtSecret),
		tokenTTL:    tokenTTL,
		log:         log,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// SignUp registers a citizen account.
func (s *SessionService) SignUp(ctx context.Context, in ports.SignUpInput) (*domain.Profile, error) {
	return s.register(ctx, in, domain.RoleCitizen)
}

// CreateAdmin registers an administrator. It is only reachable from the
// operator CLI.
func (s *SessionService) CreateAdmin(ctx context.Context, in ports.SignUpInput) (*domain.Profile, error) {
	return s.register(ctx, in, domain.RoleAdmin)
}

func (s *SessionService) register(ctx context.Context, in ports.SignUpInput, role domain.Role) (*domain.Profile, error) {
	email := normalizeEmail(in.Email)
	fullName := strings.TrimSpace(in.FullName)
	if email == "" || in.Password == "" || fullName == "" {
		return nil, fmt.Errorf("%w: email, password and full name are required", domain.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := s.now()
	identity := &domain.Identity{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    now,
	}
	if err := s.identities.Create(ctx, identity); err != nil {
		return nil, fmt.Errorf("create identity: %w", err)
	}

	profile := &domain.Profile{
		ID:        identity.ID,
		Email:     email,
		FullName:  fullName,
		Role:      role,
		Phone:     strings.TrimSpace(in.Phone),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.profiles.Create(ctx, profile); err != nil {
		// Drop the identity so the email can register again.
		if derr := s.identities.Delete(context.WithoutCancel(ctx), identity.ID); derr != nil {
			s.log.Error().Err(derr).Str("identity_id", identity.ID).Msg("identity created without profile")
		}
		return nil, fmt.Errorf("create profile: %w", err)
	}

	s.log.Info().Str("profile_id", profile.ID).Str("role", string(role)).Msg("account registered")
	return profile, nil
}

// SignIn verifies credentials and issues a session token. The profile is
// loaded best-effort; a nil profile routes the client to the login view.
func (s *SessionService) SignIn(ctx context.Context, email, password string) (*ports.SignInResult, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	identity, err := s.identities.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find identity: %w", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(identity.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	token, expiresAt, err := s.issueToken(identity)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByID(ctx, identity.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("identity_id", identity.ID).Msg("profile lookup failed at sign-in")
		profile = nil
	}

	return &ports.SignInResult{
		Token:     token,
		ExpiresAt: expiresAt,
		Identity:  *identity,
		Profile:   profile,
	}, nil
}

// Open turns a bearer token into a session bound to ctx.
func (s *SessionService) Open(ctx context.Context, token string) (*domain.Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	claims := &sessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.jwtSecret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.now))
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", domain.ErrUnauthenticated, err)
	}
	if claims.Subject == "" || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, fmt.Errorf("%w: incomplete token claims", domain.ErrUnauthenticated)
	}

	if s.revocations != nil {
		revoked, err := s.revocations.IsRevoked(ctx, claims.ID)
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked {
			return nil, domain.ErrSessionRevoked
		}
	}

	identity := domain.Identity{ID: claims.Subject, Email: claims.Email}
	sess := domain.NewSession(ctx, identity, claims.ID, claims.ExpiresAt.Time)

	profile, err := s.profiles.FindByID(sess.Context(), identity.ID)
	if err != nil {
		s.log.Warn().Err(err).Str("identity_id", identity.ID).Msg("profile unavailable for session")
		return sess, nil
	}
	sess.Profile = profile
	return sess, nil
}

// SignOut revokes the session token for the remainder of its lifetime.
func (s *SessionService) SignOut(ctx context.Context, sess *domain.Session) error {
	if sess == nil {
		return domain.ErrUnauthenticated
	}
	defer sess.Close()

	ttl := sess.ExpiresAt.Sub(s.now())
	if ttl <= 0 || s.revocations == nil {
		return nil
	}
	if err := s.revocations.Revoke(ctx, sess.TokenID, ttl); err != nil {
		return fmt.Errorf("revoke session: %w", err)
	}
	s.log.Info().Str("identity_id", sess.Identity.ID).Msg("signed out")
	return nil
}

func (s *SessionService) issueToken(identity *domain.Identity) (string, time.Time, error) {
	now := s.now()
	expiresAt := now.Add(s.tokenTTL)
	claims := sessionClaims{
		Email: identity.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.jwtSecret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
