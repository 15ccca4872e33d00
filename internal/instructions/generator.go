// Package instructions renders the shell commands for enabling SSH
// access on a target machine from a saved connection profile.
package instructions

import (
	"fmt"
	"strings"

	"sshprep/internal/config"
)

// enableScript is the fixed block run on the target machine. It is not
// interpolated: the public key line stays a placeholder the user
// replaces with the output of the first block.
const enableScript = `sudo systemctl enable ssh
sudo systemctl start ssh
mkdir -p ~/.ssh
chmod 700 ~/.ssh
echo '<paste your public key here>' >> ~/.ssh/authorized_keys
chmod 600 ~/.ssh/authorized_keys`

// Blocks holds the three command blocks in the order the user runs
// them, plus the final connection hint.
type Blocks struct {
	PrintPublicKey  string
	EnableSSH       string
	ClearStaleEntry string
	Connect         string
}

// Generate produces the command blocks for a profile. It reports false
// without output when any of the four connection fields is empty.
func Generate(p config.Profile) (Blocks, bool) {
	if p.IP == "" || p.User == "" || p.Port == "" || p.KeyPath == "" {
		return Blocks{}, false
	}

	return Blocks{
		PrintPublicKey:  fmt.Sprintf("cat %s.pub", p.KeyPath),
		EnableSSH:       enableScript,
		ClearStaleEntry: fmt.Sprintf("ssh-keygen -R %s", p.IP),
		Connect:         fmt.Sprintf("ssh -i %s -p %s %s@%s", p.KeyPath, p.Port, p.User, p.IP),
	}, true
}

// Render joins the blocks into one pasteable text with comment
// headings. Used verbatim by the gen subcommand and the clipboard copy.
func (b Blocks) Render() string {
	var out strings.Builder

	out.WriteString("# 1. On this machine: print the public key to install\n")
	out.WriteString(b.PrintPublicKey)
	out.WriteString("\n\n")
	out.WriteString("# 2. On the target machine: enable SSH and install the key\n")
	out.WriteString(b.EnableSSH)
	out.WriteString("\n\n")
	out.WriteString("# 3. On this machine: clear any stale host key fingerprint\n")
	out.WriteString(b.ClearStaleEntry)
	out.WriteString("\n\n")
	out.WriteString("# 4. Connect\n")
	out.WriteString(b.Connect)
	out.WriteString("\n")

	return out.String()
}
