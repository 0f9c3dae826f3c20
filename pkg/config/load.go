package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// LoadRequest parses a MigrationRequest from r.
func LoadRequest(r io.Reader) (*MigrationRequest, error) {
	var req MigrationRequest
	if err := yaml.NewDecoder(r).Decode(&req); err != nil {
		return nil, errors.Wrap(err, "config: failed to unmarshal migration request")
	}
	return &req, nil
}

// LoadRequestFile opens path and parses it as a MigrationRequest.
func LoadRequestFile(path string) (*MigrationRequest, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "config: failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadRequest(f)
}
