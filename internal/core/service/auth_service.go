package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/bestcars/dealership-gateway/internal/core/domain"
	"github.com/bestcars/dealership-gateway/internal/core/ports"
)

// AuthService implements login, registration and logout over the user store.
type AuthService struct {
	repo      ports.UserRepository
	revoker   ports.TokenRevoker
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, revoker ports.TokenRevoker, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		repo:      repo,
		revoker:   revoker,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Login verifies the credentials and issues a session token. An unknown
// username and a wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *domain.User, error) {
	if username == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.generateToken(user)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register creates a new account and establishes a session identical in
// shape to login's. The existence check is best-effort: a lookup failure is
// logged and treated as "not registered", favouring registration
// availability over strict uniqueness (the store's unique index still backs
// it up).
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (string, *domain.User, error) {
	if input.Username == "" || input.Password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}
	role := input.Role
	if !domain.ValidRole(role) {
		role = domain.RoleUser
	}

	existing, err := s.repo.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		s.logger.Warn().Err(err).Str("username", input.Username).
			Msg("existence check failed, treating as new user")
	}
	if existing != nil {
		return "", nil, domain.ErrAlreadyRegistered
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		DealerID:     input.DealerID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	user.Normalize()

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.generateToken(created)
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("username", created.Username).Str("user_type", created.Role).Msg("user registered")
	return token, created, nil
}

// Logout revokes the presented token until its natural expiry. It always
// succeeds from the caller's perspective: an unparsable or already expired
// token is simply ignored.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}

	claims, err := ParseClaims(token, s.jwtSecret)
	if err != nil {
		s.logger.Debug().Err(err).Msg("logout with invalid token")
		return nil
	}

	ttl := int64(time.Until(claims.ExpiresAt).Seconds())
	if claims.JTI == "" || ttl <= 0 {
		return nil
	}
	if err := s.revoker.Revoke(ctx, claims.JTI, ttl); err != nil {
		s.logger.Error().Err(err).Msg("token revocation failed")
	}
	return nil
}

// SessionClaims is the decoded view of a session token.
type SessionClaims struct {
	Username  string
	Role      string
	DealerID  int
	JTI       string
	ExpiresAt time.Time
}

// ParseClaims validates an HS256 session token and decodes its claims.
func ParseClaims(token, secret string) (*SessionClaims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !tkn.Valid {
		if err == nil {
			err = jwt.ErrTokenUnverifiable
		}
		return nil, err
	}

	out := &SessionClaims{}
	out.Username, _ = claims["username"].(string)
	out.Role, _ = claims["user_type"].(string)
	out.JTI, _ = claims["jti"].(string)
	if v, ok := claims["dealer_id"].(float64); ok {
		out.DealerID = int(v)
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		out.ExpiresAt = exp.Time
	}
	return out, nil
}

func (s *AuthService) generateToken(user *domain.User) (string, error) {
	claims := jwt.MapClaims{
		"username":  user.Username,
		"user_type": user.Role,
		"dealer_id": user.DealerID,
		"jti":       newJTI(),
		"exp":       time.Now().Add(s.tokenTTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// newJTI returns a random token identifier used for revocation tracking.
func newJTI() string {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return hex.EncodeToString([]byte(time.Now().UTC().Format(time.RFC3339Nano)))
	}
	return hex.EncodeToString(b)
}
