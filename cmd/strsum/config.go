package main

import (
	"bytes"
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/isseis/go-safe-strbuf/strhash"
)

// Config holds the tool's settings. Command line flags take precedence over
// values loaded from a TOML file.
type Config struct {
	// Version names the hash version: sip64, sip128, hsip32 or hsip64.
	Version string `toml:"version"`
	// Key is the 16-byte hash key as 32 hexadecimal characters.
	Key string `toml:"key"`
	// Trim strips leading and trailing whitespace from each input before
	// hashing.
	Trim bool `toml:"trim"`
}

// Error definitions for configuration handling
var (
	ErrInvalidKeyHex = errors.New("key must be 32 hexadecimal characters")
)

// defaultConfig returns the settings used when no file and no flags are
// given.
func defaultConfig() Config {
	return Config{Version: strhash.SIP64.String()}
}

// loadConfig reads and decodes a TOML config file. Unknown fields are
// rejected to surface typos early.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path) // #nosec G304 - path comes from the -config flag
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := decodeConfig(data, &cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func decodeConfig(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return fmt.Errorf("failed to parse config file: %w", err)
	}
	return nil
}

// parseKey decodes the hex-encoded key and validates its length.
func parseKey(keyHex string) ([]byte, error) {
	key, err := hex.DecodeString(keyHex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidKeyHex, err)
	}
	if len(key) != strhash.KeyLen {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidKeyHex, len(key))
	}
	return key, nil
}
