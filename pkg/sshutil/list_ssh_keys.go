package sshutil

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ScanSSHKeys scans ~/.ssh and returns a sorted list of candidate private key paths.
// It excludes files ending with .pub and common SSH config files.
func ScanSSHKeys() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}
	sshDir := filepath.Join(home, ".ssh")

	var keys []string

	exclude := map[string]struct{}{
		"known_hosts":     {},
		"known_hosts.old": {},
		"authorized_keys": {},
		"config":          {},
		"README":          {},
	}

	_ = filepath.WalkDir(sshDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// ignore permissions errors etc.
			return nil
		}

		// only top-level files
		if d.IsDir() {
			if path != sshDir {
				return filepath.SkipDir
			}
			return nil
		}

		base := filepath.Base(path)
		if _, ok := exclude[base]; ok {
			return nil
		}
		if strings.HasSuffix(base, ".pub") {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}

		// keep the ~/.ssh/ prefix instead of the full path
		keys = append(keys, "~/.ssh/"+base)
		return nil
	})

	sort.Strings(keys)
	return keys
}
