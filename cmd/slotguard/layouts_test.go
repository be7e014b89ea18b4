package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const testBuildInfo = `{
	"solcVersion": "0.8.24",
	"input": {
		"sources": {
			"contracts/Box.sol": {
				"content": "contract Box {\n    uint256 public value;\n}\n"
			}
		}
	},
	"output": {
		"sources": {
			"contracts/Box.sol": {
				"id": 0,
				"ast": {
					"nodeType": "SourceUnit",
					"nodes": [
						{
							"nodeType": "ContractDefinition",
							"name": "Box",
							"src": "0:40:0",
							"nodes": [
								{
									"nodeType": "VariableDeclaration",
									"name": "value",
									"src": "19:20:0",
									"constant": false,
									"mutability": "mutable",
									"typeDescriptions": {
										"typeIdentifier": "t_uint256",
										"typeString": "uint256"
									}
								}
							]
						}
					]
				}
			}
		}
	}
}`

const testSnapshot = `{
	"slotguard": "1.0.0",
	"contract": "Box",
	"storage": [
		{"contract": "Box", "label": "value", "type": "t_uint256", "src": "contracts/Box.sol:2"}
	],
	"types": {"t_uint256": {"label": "uint256"}}
}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadLayoutFromBuildInfo(t *testing.T) {
	path := writeFile(t, "build-info.json", testBuildInfo)

	layout, err := loadLayout(path, "Box")
	require.NoError(t, err)
	require.Len(t, layout.Storage, 1)
	require.Equal(t, "value", layout.Storage[0].Label)
	require.Equal(t, "t_uint256", layout.Storage[0].Type)
	require.Equal(t, "contracts/Box.sol:2", layout.Storage[0].Src)
}

func TestLoadLayoutFromBuildInfoRequiresContract(t *testing.T) {
	path := writeFile(t, "build-info.json", testBuildInfo)

	_, err := loadLayout(path, "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "--contract is required")

	_, err = loadLayout(path, "Missing")
	require.Error(t, err)
}

func TestLoadLayoutFromSnapshot(t *testing.T) {
	path := writeFile(t, "layout.json", testSnapshot)

	layout, err := loadLayout(path, "Box")
	require.NoError(t, err)
	require.Len(t, layout.Storage, 1)
	require.Equal(t, "value", layout.Storage[0].Label)
}

func TestLoadLayoutSnapshotContractMismatch(t *testing.T) {
	path := writeFile(t, "layout.json", testSnapshot)

	_, err := loadLayout(path, "Other")
	require.Error(t, err)
	require.Contains(t, err.Error(), `snapshot holds contract "Box"`)
}

func TestLoadLayoutSnapshotUnsupportedVersion(t *testing.T) {
	path := writeFile(t, "layout.json", `{
		"slotguard": "9.0.0",
		"storage": [],
		"types": {}
	}`)

	_, err := loadLayout(path, "")
	require.Error(t, err)
	require.Contains(t, err.Error(), "unsupported version")
}

func TestCheckPairCompatible(t *testing.T) {
	buildInfo := writeFile(t, "build-info.json", testBuildInfo)
	snapshot := writeFile(t, "layout.json", testSnapshot)

	// Snapshot and build-info describe the same layout.
	err := checkPair(manifestCheck{Contract: "Box", Original: snapshot, Updated: buildInfo})
	require.NoError(t, err)
}
