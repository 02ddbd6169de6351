package catalog

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Chapsvision-dev/script-registry/internal/provider"
	"github.com/Chapsvision-dev/script-registry/internal/registry"
)

// ChangeKind classifies a difference between two catalogs.
type ChangeKind string

const (
	Added   ChangeKind = "added"
	Removed ChangeKind = "removed"
	Changed ChangeKind = "changed"
	Moved   ChangeKind = "moved"
)

// Change is one difference, keyed by slug.
type Change struct {
	Slug   string
	Kind   ChangeKind
	Fields []string
}

func (c Change) String() string {
	if len(c.Fields) == 0 {
		return fmt.Sprintf("%s %s", c.Kind, c.Slug)
	}
	return fmt.Sprintf("%s %s (%s)", c.Kind, c.Slug, strings.Join(c.Fields, ", "))
}

// Diff lists what changed from published to current. Generation metadata
// is ignored.
func Diff(published, current Document) []Change {
	var out []Change
	pub := make(map[string]int, len(published.Entries))
	for i, it := range published.Entries {
		pub[it.Slug] = i
	}
	cur := make(map[string]bool, len(current.Entries))
	for i, it := range current.Entries {
		cur[it.Slug] = true
		j, ok := pub[it.Slug]
		if !ok {
			out = append(out, Change{Slug: it.Slug, Kind: Added})
			continue
		}
		if fields := changedFields(published.Entries[j], it); len(fields) > 0 {
			out = append(out, Change{Slug: it.Slug, Kind: Changed, Fields: fields})
		} else if i != j {
			out = append(out, Change{Slug: it.Slug, Kind: Moved})
		}
	}
	for _, it := range published.Entries {
		if !cur[it.Slug] {
			out = append(out, Change{Slug: it.Slug, Kind: Removed})
		}
	}
	return out
}

func changedFields(a, b Item) []string {
	var f []string
	if a.Label != b.Label {
		f = append(f, "label")
	}
	if a.Category != b.Category {
		f = append(f, "category")
	}
	if !reflect.DeepEqual(a.Source, b.Source) {
		f = append(f, "source")
	}
	if a.Logo != b.Logo {
		f = append(f, "logo")
	}
	if a.Import != b.Import {
		f = append(f, "import")
	}
	return f
}

// VerifyOptions controls the verify workflow.
type VerifyOptions struct {
	// RemoteKey is the provider object key (e.g., "scripts/catalog/2025-09-08T15-42-01Z.json").
	RemoteKey string
	// LocalPath is where the published catalog is downloaded (default: ./published-catalog.json).
	LocalPath string
}

// Report is the outcome of Verify.
type Report struct {
	RemoteKey string
	LocalPath string
	Changes   []Change
}

func (r Report) InSync() bool { return len(r.Changes) == 0 }

// Verify downloads a published catalog and diffs it against es.
func Verify(ctx context.Context, p provider.Provider, es registry.Entries, opt VerifyOptions) (Report, error) {
	remote := strings.TrimSpace(opt.RemoteKey)
	if remote == "" {
		return Report{}, fmt.Errorf("verify: remote key is empty (provide VERIFY_SOURCE or CLI arg)")
	}
	local := strings.TrimSpace(opt.LocalPath)
	if local == "" {
		local = "./published-catalog.json"
	}
	local = filepath.Clean(local)

	start := time.Now()
	log.Info().
		Str("action", "download").
		Str("provider", p.Name()).
		Str("remote", remote).
		Str("local", local).
		Msg("starting download")
	if err := p.Download(ctx, remote, local); err != nil {
		log.Error().
			Err(err).
			Str("action", "download").
			Str("provider", p.Name()).
			Str("remote", remote).
			Dur("elapsed_ms", time.Since(start)).
			Msg("download failed")
		return Report{}, fmt.Errorf("download from provider: %w", err)
	}

	data, err := os.ReadFile(local)
	if err != nil {
		return Report{}, fmt.Errorf("read downloaded catalog: %w", err)
	}
	published, err := DecodeAs(data, FormatOf(remote))
	if err != nil {
		return Report{}, err
	}
	current, err := Render(es, published.GeneratedAt)
	if err != nil {
		return Report{}, err
	}

	rep := Report{RemoteKey: remote, LocalPath: local, Changes: Diff(published, current)}
	log.Info().
		Str("action", "catalog_verify").
		Str("remote", remote).
		Int("changes", len(rep.Changes)).
		Bool("in_sync", rep.InSync()).
		Dur("elapsed_ms", time.Since(start)).
		Msg("verify done")
	return rep, nil
}
