// Package probe checks that a profile's target actually accepts SSH
// connections, typically right after the enable instructions were run
// on it.
package probe

import (
	"fmt"
	"net"
	"time"

	"golang.org/x/crypto/ssh"

	"sshprep/internal/config"
	"sshprep/pkg/sshutil"
)

const dialTimeout = 10 * time.Second

// Run dials the profile's target with key authentication and returns a
// one-line result. The host key is not verified: the target's key may
// have been regenerated moments ago.
func Run(p config.Profile) (string, error) {
	auth, err := sshutil.KeyAuthMethod(config.ExpandPath(p.KeyPath))
	if err != nil {
		return "", err
	}

	sshConfig := &ssh.ClientConfig{
		User:            p.User,
		Auth:            []ssh.AuthMethod{auth},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         dialTimeout,
	}

	addr := net.JoinHostPort(p.IP, p.Port)
	client, err := ssh.Dial("tcp", addr, sshConfig)
	if err != nil {
		return "", fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer client.Close()

	return fmt.Sprintf("Connected to %s@%s (%s)", p.User, addr, client.ServerVersion()), nil
}
