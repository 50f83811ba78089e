// Package main provides strsum, a small tool that computes keyed digests of
// its input strings using the bounds-checked string buffer library. Inputs
// come from the command line or stdin, one digest per line; the key comes
// from a flag, a TOML config file, or an interactive prompt.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/oklog/ulid/v2"
	"golang.org/x/term"

	"github.com/isseis/go-safe-strbuf/internal/terminal"
	"github.com/isseis/go-safe-strbuf/strbuf"
	"github.com/isseis/go-safe-strbuf/strhash"
)

// Error definitions
var (
	ErrKeyRequired = errors.New("a hash key is required: pass -key, set it in the config file, or run interactively")
)

var (
	configPath  = flag.String("config", "", "path to TOML config file")
	versionName = flag.String("version", "", "hash version (sip64, sip128, hsip32, hsip64)")
	keyHex      = flag.String("key", "", "16-byte hash key as 32 hex characters")
	trimInput   = flag.Bool("trim", false, "trim surrounding whitespace before hashing")
	logLevel    = flag.String("log-level", "warn", "log level (debug, info, warn, error)")
)

func main() {
	runID := ulid.Make().String()

	if err := run(runID); err != nil {
		slog.Error("strsum failed", "error", err, "run_id", runID)
		os.Exit(1)
	}
}

func run(runID string) error {
	flag.Parse()

	if err := setupLogger(*logLevel); err != nil {
		return err
	}
	slog.Debug("starting", "run_id", runID)

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	version, err := strhash.ParseVersion(cfg.Version)
	if err != nil {
		return err
	}

	key, err := resolveKey(cfg)
	if err != nil {
		return err
	}

	inputs, err := collectInputs(flag.Args())
	if err != nil {
		return err
	}

	for _, input := range inputs {
		digest, err := hashInput(input, version, key, cfg.Trim)
		if err != nil {
			return fmt.Errorf("failed to hash %q: %w", input, err)
		}
		fmt.Printf("%s  %s\n", digest.Hex(), input)
	}

	slog.Debug("done", "run_id", runID, "inputs", len(inputs), "version", version.String())
	return nil
}

// setupLogger installs a text handler on stderr at the requested level.
func setupLogger(level string) error {
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lv})))
	return nil
}

// resolveConfig loads the config file (if any) and applies flag overrides.
func resolveConfig() (Config, error) {
	cfg := defaultConfig()
	if *configPath != "" {
		loaded, err := loadConfig(*configPath)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if *versionName != "" {
		cfg.Version = *versionName
	}
	if *keyHex != "" {
		cfg.Key = *keyHex
	}
	if *trimInput {
		cfg.Trim = true
	}
	return cfg, nil
}

// resolveKey produces the 16-byte key from the config, or prompts for it
// when the session is interactive.
func resolveKey(cfg Config) ([]byte, error) {
	if cfg.Key != "" {
		return parseKey(cfg.Key)
	}
	if !(terminal.Detector{}).IsInteractive() {
		return nil, ErrKeyRequired
	}
	fmt.Fprint(os.Stderr, "hash key (32 hex chars): ")
	line, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("failed to read key: %w", err)
	}
	return parseKey(string(line))
}

// collectInputs returns the positional arguments, or stdin lines when no
// arguments are given.
func collectInputs(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var inputs []string
	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		inputs = append(inputs, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}
	return inputs, nil
}

func hashInput(input string, version strhash.Version, key []byte, trim bool) (strhash.Digest, error) {
	buf, err := strbuf.NewFromString(input)
	if err != nil {
		return strhash.Digest{}, err
	}
	if trim {
		buf, err = buf.Trim()
		if err != nil {
			return strhash.Digest{}, err
		}
	}
	return strhash.Sum(buf, version, key)
}
