package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Chapsvision-dev/script-registry/internal/digest"
	"github.com/Chapsvision-dev/script-registry/internal/registry"
)

// Options controls catalog output and naming.
type Options struct {
	// LocalPath: destination file (default: ./catalog.json). A .yaml or .yml extension writes YAML.
	LocalPath string
	// RemotePrefix: provider prefix/directory; a timestamped filename is appended (default: scripts/catalog).
	RemotePrefix string
	// TimestampFormat: Go time layout for the filename (default: 2006-01-02T15-04-05Z).
	TimestampFormat string
	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

// Result contains the written catalog and the key to publish it under.
type Result struct {
	LocalPath string
	RemoteKey string
	SHA256    string
	Entries   int
	Timestamp time.Time
}

// Write renders es to a local JSON file and returns where to upload it.
func Write(ctx context.Context, es registry.Entries, opt Options) (Result, error) {
	var res Result
	if err := ctx.Err(); err != nil {
		return res, err
	}

	local := strings.TrimSpace(opt.LocalPath)
	if local == "" {
		local = "./catalog.json"
	}
	// Fail if parent dir does not exist.
	if dir := filepath.Dir(local); dir != "" && dir != "." {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			return res, fmt.Errorf("directory %q does not exist", dir)
		} else if err != nil {
			return res, fmt.Errorf("stat %q: %w", dir, err)
		}
	}

	now := time.Now
	if opt.Now != nil {
		now = opt.Now
	}
	ts := now().UTC()

	format := FormatOf(local)
	start := time.Now()
	doc, err := Render(es, ts)
	if err != nil {
		return res, err
	}
	data, err := EncodeAs(doc, format)
	if err != nil {
		return res, fmt.Errorf("encode catalog: %w", err)
	}
	if err := os.WriteFile(local, data, 0o644); err != nil {
		return res, fmt.Errorf("write catalog: %w", err)
	}
	log.Info().
		Str("action", "catalog_export").
		Str("local", local).
		Str("format", string(format)).
		Int("entries", len(doc.Entries)).
		Dur("elapsed_ms", time.Since(start)).
		Msg("catalog written")

	key := RemoteKey(opt.RemotePrefix, opt.TimestampFormat, ts, format)
	log.Debug().
		Str("action", "build_key").
		Str("remote_key", key).
		Msg("generated remote key")

	res.LocalPath = local
	res.RemoteKey = key
	res.SHA256 = digest.Bytes(data)
	res.Entries = len(doc.Entries)
	res.Timestamp = ts
	return res, nil
}

// RemoteKey builds "<prefix>/<timestamp>.<format>".
func RemoteKey(prefix, layout string, ts time.Time, f Format) string {
	prefix = strings.Trim(strings.TrimSpace(prefix), "/")
	if prefix == "" {
		prefix = "scripts/catalog"
	}
	layout = strings.TrimSpace(layout)
	if layout == "" {
		layout = "2006-01-02T15-04-05Z"
	}
	return filepath.ToSlash(filepath.Join(prefix, ts.UTC().Format(layout)+"."+string(f)))
}
