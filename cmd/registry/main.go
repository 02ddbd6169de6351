package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/Chapsvision-dev/script-registry/internal/catalog"
	"github.com/Chapsvision-dev/script-registry/internal/config"
	"github.com/Chapsvision-dev/script-registry/internal/loader"
	"github.com/Chapsvision-dev/script-registry/internal/logx"
	"github.com/Chapsvision-dev/script-registry/internal/provider"
	"github.com/Chapsvision-dev/script-registry/internal/registry"
	"github.com/Chapsvision-dev/script-registry/internal/resolver"
	"github.com/Chapsvision-dev/script-registry/internal/version"

	_ "github.com/Chapsvision-dev/script-registry/internal/provider/azure"
)

// Test seams: overridden in unit tests. Keep signatures in sync with packages.
var (
	loadConfig    func() (config.Config, error)                                                                             = config.Load
	newProvider   func(name string, cfg any) (provider.Provider, error)                                                     = provider.New
	catalogWrite  func(context.Context, registry.Entries, catalog.Options) (catalog.Result, error)                          = catalog.Write
	catalogVerify func(context.Context, provider.Provider, registry.Entries, catalog.VerifyOptions) (catalog.Report, error) = catalog.Verify
	exit          func(int)                                                                                                 = os.Exit
)

const usage = `
Usage:
  registry list     [category]
  registry resolve  <label|slug> [key=value ...]
  registry export   [localFile]
  registry publish  [localFile] [targetPrefix]
  registry verify   [remoteKey] [localFile]
  registry version | --version | -v
  registry help    | --help    | -h

Notes:
  - Repeat a key to pass a list, e.g. resolve plausible extension=hash extension=outbound-links
  - You can also set env vars:
      CATALOG_OUTPUT, CATALOG_PREFIX, VERIFY_SOURCE, VERIFY_TARGET
  - Storage provider is selected with CATALOG_PROVIDER (default: azure).
  - REGISTRY_MODULE_ROOT re-roots module paths; RESOLVE_STRICT=true rejects missing required options.
`

// main wires CLI -> config -> registry -> loader/catalog/provider.
// Exit codes: 0 success, 1 runtime error, 2 usage error.
func main() {
	_ = godotenv.Load() // best-effort
	logx.InitFromEnv()

	args := os.Args[1:]
	if len(args) < 1 {
		fmt.Print(usage)
		exit(2)
	}
	action := strings.ToLower(args[0])

	if action == "version" || action == "--version" || action == "-v" {
		fmt.Printf("script-registry %s\n", version.Info())
		exit(0)
	}

	if action == "help" || action == "--help" || action == "-h" {
		fmt.Print(usage)
		exit(0)
	}

	cfg, err := loadConfig()
	if err != nil {
		log.Error().Err(err).Msg("config error")
		exit(1)
	}
	entries := registry.Build(registry.RootedAt(cfg.ModuleRoot))

	ctx := withSignals(context.Background())

	switch action {
	case "list":
		es := entries
		if len(args) > 1 {
			c, err := registry.ParseCategory(args[1])
			if err != nil {
				fmt.Fprintln(os.Stderr, err)
				exit(2)
			}
			es = entries.ByCategory(c)
		}
		printList(es)

	case "resolve":
		if len(args) < 2 {
			fmt.Print(usage)
			exit(2)
		}
		e, err := entries.Find(args[1])
		if err != nil {
			log.Error().Err(err).Str("action", "resolve").Msg("unknown entry")
			exit(1)
		}
		opts, err := resolver.ParsePairs(args[2:])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			exit(2)
		}
		plan, err := loader.PlanEntry(e, opts, loader.Options{Strict: cfg.Strict})
		if err != nil {
			log.Error().Err(err).Str("action", "resolve").Str("entry", e.Label).Msg("resolve failed")
			exit(1)
		}
		printPlan(plan)

	case "export":
		local := pickArgOrEnv(2, "CATALOG_OUTPUT", cfg.CatalogOutput)
		res, err := catalogWrite(ctx, entries, catalog.Options{
			LocalPath:       local,
			RemotePrefix:    cfg.CatalogPrefix,
			TimestampFormat: cfg.CatalogTimestampFormat,
		})
		if err != nil {
			log.Error().Err(err).Str("action", "catalog_export").Msg("export failed")
			exit(1)
		}
		fmt.Printf("%s\t%s\n", res.LocalPath, res.SHA256)

	case "publish":
		p := mustProvider(cfg)
		local := pickArgOrEnv(2, "CATALOG_OUTPUT", cfg.CatalogOutput)
		prefix := pickArgOrEnv(3, "CATALOG_PREFIX", cfg.CatalogPrefix)

		res, err := catalogWrite(ctx, entries, catalog.Options{
			LocalPath:       local,
			RemotePrefix:    prefix,
			TimestampFormat: cfg.CatalogTimestampFormat,
		})
		if err != nil {
			log.Error().Err(err).Str("action", "catalog_export").Msg("export failed")
			exit(1)
		}

		upStart := time.Now()
		if err := p.Upload(ctx, res.LocalPath, res.RemoteKey); err != nil {
			log.Error().Err(err).Str("action", "upload").Str("remote", res.RemoteKey).Msg("upload failed")
			exit(1)
		}
		log.Info().
			Str("action", "upload").
			Str("provider", cfg.Provider).
			Str("remote", res.RemoteKey).
			Str("sha256", res.SHA256).
			Dur("elapsed_ms", time.Since(upStart)).
			Msg("publish OK")
		fmt.Println(res.RemoteKey)

	case "verify":
		p := mustProvider(cfg)
		source := pickArgOrEnv(2, "VERIFY_SOURCE", cfg.VerifySource) // remote key
		target := pickArgOrEnv(3, "VERIFY_TARGET", cfg.VerifyTarget) // local file

		rep, err := catalogVerify(ctx, p, entries, catalog.VerifyOptions{
			RemoteKey: source,
			LocalPath: target,
		})
		if err != nil {
			log.Error().Err(err).Str("action", "catalog_verify").Str("remote", source).Msg("verify failed")
			exit(1)
		}
		for _, c := range rep.Changes {
			fmt.Println(c)
		}
		if !rep.InSync() {
			exit(1)
		}

	default:
		fmt.Print(usage)
		exit(2)
	}
}

func mustProvider(cfg config.Config) provider.Provider {
	p, err := newProvider(cfg.Provider, cfg)
	if err != nil {
		log.Error().Err(err).Str("provider", cfg.Provider).Msg("provider init error")
		exit(1)
	}
	return p
}

func printList(es registry.Entries) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SLUG\tLABEL\tCATEGORY\tSOURCE\tIMPORT")
	for _, e := range es {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s from %s\n",
			e.Slug(), e.Label, e.Category, registry.KindOf(e.Source), e.Import.Name, e.Import.From)
	}
	_ = w.Flush()
}

func printPlan(p loader.Plan) {
	fmt.Printf("entry:  %s\nmode:   %s\n", p.Label, p.Mode)
	if p.URL != "" {
		fmt.Printf("url:    %s\n", p.URL)
	}
	fmt.Printf("import: %s from %s\n", p.Import.Name, p.Import.From)
}

func pickArgOrEnv(idx int, env string, def string) string {
	if len(os.Args) > idx && os.Args[idx] != "" {
		return os.Args[idx]
	}
	if v, ok := os.LookupEnv(env); ok && v != "" {
		return v
	}
	return def
}

func withSignals(parent context.Context) context.Context {
	ctx, cancel := context.WithCancel(parent)
	go func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		<-ch
		cancel()
	}()
	return ctx
}
