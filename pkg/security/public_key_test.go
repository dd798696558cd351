package security_test

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Nik0lakt/cafeteria-project/pkg/security"
)

func publicKeyPEM(t *testing.T) (*rsa.PrivateKey, []byte) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	der, err := x509.MarshalPKIXPublicKey(&key.PublicKey)
	require.NoError(t, err)

	return key, pem.EncodeToMemory(&pem.Block{Type: "PUBLIC KEY", Bytes: der})
}

func TestParsePublicKey(t *testing.T) {
	t.Parallel()

	key, data := publicKeyPEM(t)

	pub, err := security.ParsePublicKey(data)
	require.NoError(t, err)
	require.True(t, key.PublicKey.Equal(pub))

	_, err = security.ParsePublicKey([]byte("garbage"))
	require.ErrorIs(t, err, security.ErrNoPEMBlock)
}

func TestParsePublicKeyFromFile(t *testing.T) {
	t.Parallel()

	_, data := publicKeyPEM(t)

	path := filepath.Join(t.TempDir(), "public.pub")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	_, err := security.ParsePublicKeyFromFile(path)
	require.NoError(t, err)

	_, err = security.ParsePublicKeyFromFile(filepath.Join(t.TempDir(), "absent.pub"))
	require.Error(t, err)
}

func TestLoadPublicKey(t *testing.T) {
	t.Parallel()

	key, data := publicKeyPEM(t)

	pub, err := security.LoadPublicKey(string(data))
	require.NoError(t, err)
	require.True(t, key.PublicKey.Equal(pub))

	pub, err = security.LoadPublicKey(base64.StdEncoding.EncodeToString(data))
	require.NoError(t, err)
	require.True(t, key.PublicKey.Equal(pub))

	_, err = security.LoadPublicKey("")
	require.ErrorIs(t, err, security.ErrNoPEMBlock)

	_, err = security.LoadPublicKey("%%%")
	require.Error(t, err)
}
