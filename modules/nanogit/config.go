package nanogit

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config mirrors the durable-looking configuration Git keeps in its
// repository directory — here it only ever exists as an in-memory TOML
// document the caller owns the bytes of.
type Config struct {
	FormatVersion int `toml:"format_version"`
}

// ConfigBytes renders the Database's config as a TOML document.
func (d *Database) ConfigBytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(d.Config); err != nil {
		return nil, fmt.Errorf("nanogit: encode config: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadConfigBytes parses a TOML document produced by ConfigBytes (or
// hand-written by a caller) back into the Database's config.
func (d *Database) LoadConfigBytes(b []byte) error {
	var cfg Config
	if _, err := toml.Decode(string(b), &cfg); err != nil {
		return fmt.Errorf("nanogit: decode config: %w", err)
	}
	d.Config = cfg
	return nil
}
