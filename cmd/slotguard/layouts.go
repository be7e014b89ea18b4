package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/slotguard/slotguard-go"
	"github.com/slotguard/slotguard-go/solc"
)

// loadLayout reads a contract's storage layout from path. Two file shapes are
// accepted: a slotguard snapshot document (detected by its "slotguard"
// version field) and a solc/framework build-info file carrying the compiler's
// standard-JSON input and output.
func loadLayout(path, contract string) (*slotguard.StorageLayout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var probe struct {
		Slotguard string `json:"slotguard"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if probe.Slotguard != "" {
		return layoutFromSnapshot(data, path, contract)
	}
	return layoutFromBuildInfo(data, path, contract)
}

func layoutFromSnapshot(data []byte, path, contract string) (*slotguard.StorageLayout, error) {
	var snap slotguard.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if err := snap.Validate(slotguard.WithRequireSupportedVersion()); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if contract != "" && snap.Contract != "" && snap.Contract != contract {
		return nil, fmt.Errorf("%s: snapshot holds contract %q, not %q", path, snap.Contract, contract)
	}
	slog.Debug("loaded layout snapshot", "path", path, "contract", snap.Contract, "fields", len(snap.Storage))
	return snap.Layout(), nil
}

func layoutFromBuildInfo(data []byte, path, contract string) (*slotguard.StorageLayout, error) {
	if contract == "" {
		return nil, fmt.Errorf("%s: --contract is required for build-info files", path)
	}
	var info solc.BuildInfo
	if err := json.Unmarshal(data, &info); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def, err := info.Output.FindContract(contract)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	layout, err := slotguard.ExtractLayout(def, solc.NewSrcDecoder(&info.Input, &info.Output))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("extracted layout", "path", path, "contract", contract, "fields", len(layout.Storage))
	return layout, nil
}
