package secrets

import (
	"context"
	"fmt"

	"k8s.io/apimachinery/pkg/types"
)

var _ SecretGetter = (*MockSecret)(nil)

// NewMock returns a simple secret getter.
func NewMock() MockSecret {
	return MockSecret{secrets: map[string]string{}}
}

// MockSecret implements the SecretGetter interface.
type MockSecret struct {
	secrets map[string]string
}

// SecretToken implements the SecretGetter interface.
func (k MockSecret) SecretToken(ctx context.Context, secretID types.NamespacedName, key string) (string, error) {
	token, ok := k.secrets[mockKey(secretID, key)]
	if !ok {
		return "", fmt.Errorf("mock not found")
	}
	return token, nil
}

// AddStubResponse is a mock method that sets up a token to be returned.
func (k MockSecret) AddStubResponse(secretID types.NamespacedName, key, token string) {
	k.secrets[mockKey(secretID, key)] = token
}

func mockKey(n types.NamespacedName, key string) string {
	return fmt.Sprintf("%s:%s:%s", n.Name, n.Namespace, key)
}
