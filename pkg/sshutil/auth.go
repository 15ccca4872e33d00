package sshutil

import (
	"fmt"
	"os"

	"golang.org/x/crypto/ssh"
)

// KeyAuthMethod returns an AuthMethod using the specified private key file.
// The path must already be expanded; passphrase-protected keys are not
// supported.
func KeyAuthMethod(keyPath string) (ssh.AuthMethod, error) {
	keyBytes, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key: %w", err)
	}

	signer, err := ssh.ParsePrivateKey(keyBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return ssh.PublicKeys(signer), nil
}
