package jwt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cmlabs-hris/hr-admin-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// ErrMissingClaims is returned when the request context carries no usable access token.
var ErrMissingClaims = errors.New("authentication claims are missing or invalid")

type Service interface {
	// GenerateAccessToken mints a token the way the identity provider does. Used by tooling and tests.
	GenerateAccessToken(principal user.Principal) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
}

type JWTService struct {
	accessTokenExpirationTime string
	tokenAuth                 *jwtauth.JWTAuth
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, accessTokenExpirationTime string) Service {
	return &JWTService{
		accessTokenExpirationTime: accessTokenExpirationTime,
		tokenAuth:                 jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) GenerateAccessToken(principal user.Principal) (token string, expiresAt int64, err error) {
	expDuration, err := time.ParseDuration(j.accessTokenExpirationTime)
	if err != nil {
		return "", 0, err
	}
	expiresAt = time.Now().Add(expDuration).Unix()

	claims := map[string]any{
		"user_id":     principal.UserID,
		"email":       principal.Email,
		"employee_id": valueOrNil(principal.EmployeeID),
		"role":        string(principal.Role),
		"type":        "access",
		"exp":         expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

func valueOrNil(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

// PrincipalFromContext reads the verified claims placed in ctx by jwtauth.Verifier.
func PrincipalFromContext(ctx context.Context) (user.Principal, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return user.Principal{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	return PrincipalFromClaims(claims)
}

// PrincipalFromClaims maps a claim set onto a Principal.
func PrincipalFromClaims(claims map[string]any) (user.Principal, error) {
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return user.Principal{}, ErrMissingClaims
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return user.Principal{}, ErrMissingClaims
	}
	role := user.Role(roleStr)
	if !role.IsValid() {
		return user.Principal{}, user.ErrInvalidRole
	}

	principal := user.Principal{UserID: userID, Role: role}
	if email, ok := claims["email"].(string); ok {
		principal.Email = email
	}
	if employeeID, ok := claims["employee_id"].(string); ok && employeeID != "" {
		principal.EmployeeID = &employeeID
	}
	return principal, nil
}
