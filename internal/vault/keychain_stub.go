//go:build !darwin

package vault

import (
	"context"
	"fmt"
)

type keychainStore struct{}

var errUnsupported = fmt.Errorf("keychain backend not supported on this OS")

func newKeychainStore() (Store, error) { return nil, errUnsupported }

func (s *keychainStore) ListSecrets(ctx context.Context) ([]SecretMetadata, error) {
	return nil, errUnsupported
}

func (s *keychainStore) GetSecretMetadata(ctx context.Context, name string) (SecretMetadata, error) {
	return SecretMetadata{Name: name, IsSet: false, Backend: "keychain"}, errUnsupported
}

func (s *keychainStore) SetSecret(ctx context.Context, name string, value []byte) error {
	return errUnsupported
}

func (s *keychainStore) UnsetSecret(ctx context.Context, name string) error {
	return errUnsupported
}

func (s *keychainStore) GetSecretValue(ctx context.Context, name string) ([]byte, error) {
	return nil, errUnsupported
}
