package globals

import (
	"context"
	"os"

	"github.com/joho/godotenv"
)

// JwtSecret signs and verifies session tokens. Assigned in init so the
// dotenv file is loaded first; packages that read env at init import this
// package and inherit the load.
var JwtSecret []byte

func init() {
	_ = godotenv.Load()
	JwtSecret = []byte(envOr("JWT_SECRET", "change_me_in_production"))
}

// Context keys
type ContextKey string

const UserIDKey ContextKey = "userId"
const RoleKey ContextKey = "role"

var Ctx = context.Background()

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
