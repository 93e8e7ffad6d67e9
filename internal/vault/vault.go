package vault

import (
	"context"
	"fmt"
	"sync"
	"time"

	cfgpkg "github.com/tagkeep/tagkeep/internal/config"
)

// Store defines the operations required to manage secrets in a backend vault.
// Implementations must never log or print secret values.
type Store interface {
	// ListSecrets returns metadata for all secrets belonging to this tool.
	ListSecrets(ctx context.Context) ([]SecretMetadata, error)
	// GetSecretMetadata returns metadata for a secret name. An unset secret is
	// reported with IsSet=false and no error.
	GetSecretMetadata(ctx context.Context, name string) (SecretMetadata, error)
	// SetSecret creates or updates a secret value.
	SetSecret(ctx context.Context, name string, value []byte) error
	// UnsetSecret deletes the secret.
	UnsetSecret(ctx context.Context, name string) error
	// GetSecretValue fetches the raw secret for internal use only. Command code
	// must never print or log the returned bytes.
	GetSecretValue(ctx context.Context, name string) ([]byte, error)
}

// SecretMetadata contains non-sensitive information about a secret.
type SecretMetadata struct {
	Name      string
	IsSet     bool
	Backend   string
	UpdatedAt *time.Time
}

const (
	// ServiceName groups all secrets belonging to tagkeep in the OS keychain.
	ServiceName = "tagkeep-vault"

	// SecretDatabaseURL is the well-known secret holding the connection URI.
	SecretDatabaseURL = "database-url"
)

// NewStore constructs a vault for the selected backend.
func NewStore(backend string) (Store, error) {
	switch backend {
	case "", "keychain":
		return newKeychainStore()
	default:
		return nil, fmt.Errorf("vault backend not implemented: %s", backend)
	}
}

var cached struct {
	sync.Mutex
	store   Store
	backend string
}

// GetSecret is a safe accessor for other packages to read a secret at runtime.
// It uses the backend from config.yaml and caches the store for reuse.
func GetSecret(ctx context.Context, name string) ([]byte, error) {
	cfg, err := cfgpkg.Load()
	if err != nil {
		return nil, err
	}
	backend := cfg.Vault.Backend
	cached.Lock()
	if cached.store == nil || cached.backend != backend {
		st, serr := NewStore(backend)
		if serr != nil {
			cached.Unlock()
			return nil, serr
		}
		cached.store = st
		cached.backend = backend
	}
	st := cached.store
	cached.Unlock()
	return st.GetSecretValue(ctx, name)
}
