package ports

// CredentialStore is durable, origin-scoped persistence for the current
// bearer credential. It stores exactly what it is given: no expiry tracking,
// no encryption at this layer.
//
// Load returns ("", nil) when no credential is stored; storage being
// unavailable is reported the same way rather than as an error, so callers
// treat a broken store as "not logged in" instead of failing.
type CredentialStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}
