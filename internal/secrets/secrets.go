// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads provider credentials from a directory of
// plain-text files: the filename is the key name, the trimmed contents
// are the value.
//
// Supported key files: semantic-scholar-api-key, crossref-mailto,
// opencitations-access-token.
package secrets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Key names the CLI looks up after loading.
const (
	KeySemanticScholarAPIKey = "semantic-scholar-api-key"
	KeyCrossRefMailTo        = "crossref-mailto"
	KeyOpenCitationsToken    = "opencitations-access-token"
)

// Load reads every regular file in dir into a map of filename to trimmed
// contents. A missing directory is not an error: all three providers
// work without credentials, just at lower quotas. Unreadable files
// produce a warning on stderr but do not abort.
func Load(dir string) (map[string]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("reading secrets directory %s: %w", dir, err)
	}

	secrets := make(map[string]string)
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not read secret %s: %v\n", name, err)
			continue
		}

		if value := strings.TrimSpace(string(data)); value != "" {
			secrets[name] = value
		}
	}

	return secrets, nil
}
