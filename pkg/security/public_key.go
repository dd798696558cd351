package security

import (
	"bytes"
	"crypto/rsa"
	"crypto/x509"
	"encoding/base64"
	"encoding/pem"
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrNoPEMBlock = errors.New("no pem block found")

func ParsePublicKey(pkey []byte) (*rsa.PublicKey, error) {
	block, _ := pem.Decode(pkey)
	if block == nil || block.Type != "PUBLIC KEY" {
		return nil, ErrNoPEMBlock
	}

	pub, err := x509.ParsePKIXPublicKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("parse public key: %w", err)
	}

	rsaPub, ok := pub.(*rsa.PublicKey)
	if !ok {
		return nil, errors.New("not an RSA public key")
	}

	return rsaPub, nil
}

func ParsePublicKeyFromFile(filename string) (*rsa.PublicKey, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return ParsePublicKey(data)
}

// LoadPublicKey accepts a PEM block as is or base64 encoded, as env values often are.
func LoadPublicKey(value string) (*rsa.PublicKey, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil, ErrNoPEMBlock
	}

	if strings.HasPrefix(value, "-----BEGIN") {
		return ParsePublicKey([]byte(value))
	}

	decoded, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("decode base64: %w", err)
	}

	return ParsePublicKey(bytes.TrimSpace(decoded))
}
