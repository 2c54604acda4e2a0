// SPDX-License-Identifier: MIT

package backtest

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML config from path over DefaultConfig. Keys that are
// absent keep their defaults; unknown keys are rejected. The result is
// validated.
func LoadConfig(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("backtest: open config: %w", err)
	}
	defer f.Close()

	return DecodeConfig(f)
}

// DecodeConfig is LoadConfig for an already opened stream.
func DecodeConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("backtest: decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// WriteYAML encodes the report as YAML.
func (r Report) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("backtest: encode report: %w", err)
	}

	return enc.Close()
}
