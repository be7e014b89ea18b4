package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadManifest(t *testing.T) {
	path := writeFile(t, "slotguard.yaml", `
checks:
  - contract: Token
    original: deployed/token.json
    updated: build/token.json
  - contract: Vault
    original: deployed/vault.json
    updated: build/vault.json
`)

	m, err := loadManifest(path)
	require.NoError(t, err)
	require.Len(t, m.Checks, 2)
	require.Equal(t, "Token", m.Checks[0].Contract)
	require.Equal(t, "deployed/token.json", m.Checks[0].Original)
	require.Equal(t, "build/vault.json", m.Checks[1].Updated)
}

func TestLoadManifestEmpty(t *testing.T) {
	path := writeFile(t, "slotguard.yaml", "checks: []\n")

	_, err := loadManifest(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "lists no checks")
}

func TestLoadManifestMissingPaths(t *testing.T) {
	path := writeFile(t, "slotguard.yaml", `
checks:
  - contract: Token
    original: deployed/token.json
`)

	_, err := loadManifest(path)
	require.Error(t, err)
	require.Contains(t, err.Error(), "checks[0]: original and updated are required")
}

func TestLoadManifestMalformedYAML(t *testing.T) {
	path := writeFile(t, "slotguard.yaml", "checks: [unclosed\n")

	_, err := loadManifest(path)
	require.Error(t, err)
}
