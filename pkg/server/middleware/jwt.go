package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/rhq-project/rhq-in-go/pkg/model"
)

// Issuer is the iss claim of every token the server signs.
const Issuer = "rhq"

type contextKey string

const subjectKey contextKey = "subject"

// Claims are the claims of an access token. The registered subject claim
// holds the subject id; Name is the login name.
type Claims struct {
	Name string `json:"name"`
	jwt.RegisteredClaims
}

// JWTAuthenticator validates HS256 bearer tokens and puts the subject they
// name into the request context.
type JWTAuthenticator struct {
	secret []byte
	now    func() time.Time
}

// NewJWTAuthenticator creates a new JWT authenticator middleware
func NewJWTAuthenticator(secret []byte) *JWTAuthenticator {
	return &JWTAuthenticator{secret: secret, now: time.Now}
}

// IssueToken signs a token for subject valid for ttl.
func (j *JWTAuthenticator) IssueToken(subject *model.Subject, ttl time.Duration) (string, time.Time, error) {
	return IssueToken(j.secret, subject, ttl, j.now())
}

// IssueToken signs a token for subject valid for ttl from now.
func IssueToken(secret []byte, subject *model.Subject, ttl time.Duration, now time.Time) (string, time.Time, error) {
	if len(secret) == 0 {
		return "", time.Time{}, errors.New("token secret is not configured")
	}
	expires := now.Add(ttl)
	claims := Claims{
		Name: subject.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    Issuer,
			Subject:   strconv.Itoa(subject.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expires, nil
}

// Parse validates a signed token and returns the subject it names.
func (j *JWTAuthenticator) Parse(tokenString string) (*model.Subject, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(Issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil {
		return nil, err
	}

	id, err := strconv.Atoi(claims.Subject)
	if err != nil {
		return nil, fmt.Errorf("invalid subject claim %q", claims.Subject)
	}
	return &model.Subject{ID: id, Name: claims.Name}, nil
}

// Middleware returns an HTTP middleware that validates bearer tokens
func (j *JWTAuthenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			http.Error(w, "Authorization missing", http.StatusUnauthorized)
			return
		}

		tokenString, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || tokenString == "" {
			http.Error(w, "Malformed authorization header", http.StatusUnauthorized)
			return
		}

		subject, err := j.Parse(tokenString)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				http.Error(w, "Token expired", http.StatusUnauthorized)
				return
			}
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSubject(r.Context(), subject)))
	})
}

// WithSubject returns a context carrying subject.
func WithSubject(ctx context.Context, subject *model.Subject) context.Context {
	return context.WithValue(ctx, subjectKey, subject)
}

// SubjectFromContext returns the authenticated subject of a request.
func SubjectFromContext(ctx context.Context) (*model.Subject, bool) {
	subject, ok := ctx.Value(subjectKey).(*model.Subject)
	return subject, ok && subject != nil
}
