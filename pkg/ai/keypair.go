package ai

import (
	"crypto/rsa"
	"encoding/pem"
	"fmt"
	"os"

	"github.com/youmark/pkcs8"
)

// LoadPrivateKey reads a PEM private-key file and returns the RSA key in the
// form the Snowflake driver expects. When a passphrase is given it is tried
// first, with a fallback to an unencrypted parse, so an unencrypted key with
// a stale passphrase still loads.
func LoadPrivateKey(path, passphrase string) (*rsa.PrivateKey, error) {
	pemBytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key file: %w", err)
	}

	block, _ := pem.Decode(pemBytes)
	if block == nil {
		return nil, fmt.Errorf("no PEM block found in %s", path)
	}

	if passphrase != "" {
		if key, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes, []byte(passphrase)); err == nil {
			return asRSAKey(key)
		}
	}

	key, err := pkcs8.ParsePKCS8PrivateKey(block.Bytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse PKCS8 private key: %w", err)
	}
	return asRSAKey(key)
}

func asRSAKey(key any) (*rsa.PrivateKey, error) {
	rsaKey, ok := key.(*rsa.PrivateKey)
	if !ok {
		return nil, fmt.Errorf("private key is %T, expected RSA", key)
	}
	return rsaKey, nil
}
