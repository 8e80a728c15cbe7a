package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/hrsaas/timesheet-backend/internal/domain/user"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var (
	ErrInvalidToken  = errors.New("invalid or expired token")
	ErrMissingClaims = errors.New("token is missing required claims")
)

// Claims is the caller identity carried by every access token.
type Claims struct {
	UserID    string
	Email     string
	CompanyID string
	Role      user.Role
}

func (c Claims) IsAdmin() bool {
	return c.Role == user.RoleAdmin || c.Role == user.RoleSysAdmin
}

type Service interface {
	GenerateAccessToken(userID string, email string, companyID string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime time.Duration
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime time.Duration) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

// GenerateAccessToken issues tokens for tests and tooling; login lives upstream.
func (j *JWTService) GenerateAccessToken(userID string, email string, companyID string, role user.Role) (token string, expiresAt int64, err error) {
	expiresAt = time.Now().Add(j.accessTokenExpirationTime).Unix()

	claims := map[string]interface{}{
		"user_id":    userID,
		"email":      email,
		"company_id": companyID,
		"role":       string(role),
		"type":       "access",
		"exp":        expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// FromContext reads the verified claims placed by jwtauth.Verifier.
func FromContext(ctx context.Context) (Claims, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Claims{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, _ := claims["user_id"].(string)
	companyID, _ := claims["company_id"].(string)
	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)

	if userID == "" {
		return Claims{}, fmt.Errorf("%w: user_id", ErrMissingClaims)
	}
	if companyID == "" {
		return Claims{}, user.ErrCompanyIDRequired
	}

	return Claims{
		UserID:    userID,
		Email:     email,
		CompanyID: companyID,
		Role:      user.Role(role),
	}, nil
}

// NewContext attaches claims the way jwtauth.Verifier would, for service tests.
func NewContext(ctx context.Context, ja *jwtauth.JWTAuth, c Claims) (context.Context, error) {
	token, _, err := ja.Encode(map[string]interface{}{
		"user_id":    c.UserID,
		"email":      c.Email,
		"company_id": c.CompanyID,
		"role":       string(c.Role),
		"type":       "access",
	})
	if err != nil {
		return nil, err
	}
	return jwtauth.NewContext(ctx, token, nil), nil
}
