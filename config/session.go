package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"sdcalc/models"

	"gopkg.in/yaml.v3"
)

// LoadSession reads a session file. Parameters missing from the file keep
// their defaults.
func LoadSession(path string) (*models.Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read session %s: %w", path, err)
	}
	return ParseSession(data)
}

// ParseSession decodes a YAML session, rejecting unknown keys.
func ParseSession(data []byte) (*models.Session, error) {
	s := &models.Session{Params: models.DefaultParams()}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	// An empty document decodes to no streams and default parameters.
	if err := dec.Decode(s); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse session: %w", err)
	}
	return s, nil
}

// SaveSession writes s as YAML so it can be passed back with --file.
func SaveSession(path string, s *models.Session) error {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("write session %s: %w", path, err)
	}
	return nil
}
