package rdx

// Session token cache. Login stores the active token per user, logout removes
// it. Kept in a single hash so an admin tool can enumerate live sessions.

const sessionHash = "sessions"

func StoreSessionToken(userID, token string) error {
	return RdxHset(sessionHash, userID, token)
}

func DropSessionToken(userID string) error {
	_, err := RdxHdel(sessionHash, userID)
	return err
}

func SessionToken(userID string) (string, error) {
	return RdxHget(sessionHash, userID)
}
