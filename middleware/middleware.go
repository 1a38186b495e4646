package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"grabgood/db"
	"grabgood/globals"
	"grabgood/models"
	"grabgood/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
)

// JWT claims
type Claims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

const TokenTTL = 12 * time.Hour

// IssueToken signs an HS256 token for the given user.
func IssueToken(userID, role string) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenTTL)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(globals.JwtSecret)
}

// tokenFromRequest pulls the JWT out of the Authorization header or, failing
// that, the httpOnly cookie set at login.
func tokenFromRequest(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return header[7:]
	}
	if c, err := r.Cookie("token"); err == nil {
		return c.Value
	}
	return ""
}

func parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	return claims, nil
}

func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := tokenFromRequest(r)
		if tokenString == "" {
			utils.SendError(w, http.StatusUnauthorized, "Missing token")
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			utils.SendError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		// Reload the user so status and role changes apply immediately,
		// not at token expiry.
		var user models.User
		err = db.UserCollection.FindOne(r.Context(), bson.M{"userid": claims.UserID}).Decode(&user)
		if err != nil || user.Status != models.UserStatusActive {
			utils.SendError(w, http.StatusUnauthorized, "Account is not active")
			return
		}

		ctx := context.WithValue(r.Context(), globals.UserIDKey, user.UserID)
		ctx = context.WithValue(ctx, globals.RoleKey, user.Role)
		next(w, r.WithContext(ctx), ps)
	}
}

func OptionalAuth(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		if tokenString := tokenFromRequest(r); tokenString != "" {
			if claims, err := parseToken(tokenString); err == nil {
				ctx := context.WithValue(r.Context(), globals.UserIDKey, claims.UserID)
				ctx = context.WithValue(ctx, globals.RoleKey, claims.Role)
				r = r.WithContext(ctx)
			}
		}
		next(w, r, ps)
	}
}

// RequireRoles rejects requests whose authenticated role is outside the
// allowed set. Must be wrapped inside Authenticate.
func RequireRoles(allowed ...string) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			role, _ := r.Context().Value(globals.RoleKey).(string)
			for _, a := range allowed {
				if role == a {
					next(w, r, ps)
					return
				}
			}
			utils.SendError(w, http.StatusForbidden, "Insufficient permissions")
		}
	}
}

// ValidateJWT parses a raw "Bearer ..." header value. Used by handlers that
// read the token outside the middleware chain.
func ValidateJWT(header string) (*Claims, error) {
	if !strings.HasPrefix(header, "Bearer ") {
		return nil, fmt.Errorf("invalid token")
	}
	return parseToken(header[7:])
}

// RequestUser returns the authenticated user id and role from the context.
func RequestUser(r *http.Request) (string, string) {
	userID, _ := r.Context().Value(globals.UserIDKey).(string)
	role, _ := r.Context().Value(globals.RoleKey).(string)
	return userID, role
}
