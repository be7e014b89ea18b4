package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// manifest lists contract layout pairs to check in one run, so deployment
// pipelines can keep the whole upgrade surface in one reviewed file.
type manifest struct {
	Checks []manifestCheck `yaml:"checks"`
}

type manifestCheck struct {
	Contract string `yaml:"contract"`
	Original string `yaml:"original"`
	Updated  string `yaml:"updated"`
}

func loadManifest(path string) (*manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var m manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if len(m.Checks) == 0 {
		return nil, fmt.Errorf("%s: manifest lists no checks", path)
	}
	for i, c := range m.Checks {
		if c.Original == "" || c.Updated == "" {
			return nil, fmt.Errorf("%s: checks[%d]: original and updated are required", path, i)
		}
	}
	return &m, nil
}
