package azure

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob/blob"

	"github.com/Chapsvision-dev/script-registry/internal/catalog"
	"github.com/Chapsvision-dev/script-registry/internal/digest"
	"github.com/Chapsvision-dev/script-registry/internal/retry"
)

// Provider publishes catalogs to an Azure Blob container.
type Provider struct {
	client     *azblob.Client
	container  string
	endpoint   string // e.g. https://<account>.blob.core.windows.net/
	sas        string // raw SAS without leading "?"
	authViaSAS bool
	ro         retry.Options
	httpClient *http.Client
}

func (p *Provider) Name() string { return "azure" }

// withRetry runs fn under the provider's retry policy and logs every attempt.
// It returns the number of attempts made.
func (p *Provider) withRetry(ctx context.Context, action, key string, fn func(context.Context) error) (int, error) {
	start := time.Now()
	attempt := 0
	err := retry.Do(ctx, p.ro, p.isAzRetryable, func(ctx context.Context) error {
		attempt++
		log.Debug().Str("action", action).Str("container", p.container).Str("key", key).
			Int("attempt", attempt).Msg("starting attempt")
		if err := fn(ctx); err != nil {
			log.Debug().Err(err).Str("action", action).Str("container", p.container).Str("key", key).
				Int("attempt", attempt).Msg("attempt failed")
			return err
		}
		return nil
	})
	if err == nil {
		log.Debug().Str("action", action).Str("container", p.container).Str("key", key).
			Int("attempts", attempt).Dur("elapsed_ms", time.Since(start)).Msg("attempt succeeded")
	}
	return attempt, err
}

// Upload publishes the catalog file and validates it (HEAD with SAS, list otherwise).
func (p *Provider) Upload(ctx context.Context, source, target string) error {
	if err := p.ensureContainer(ctx); err != nil {
		return fmt.Errorf("ensure container: %w", err)
	}
	key := normalizeKey(target)

	sum, size, err := digest.File(source)
	if err != nil {
		return fmt.Errorf("checksum: %w", err)
	}

	start := time.Now()
	attempts, err := p.withRetry(ctx, "azure_upload", key, func(ctx context.Context) error {
		f, err := os.Open(source)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); cerr != nil {
				log.Warn().Err(cerr).Str("file", source).Msg("failed to close catalog after upload")
			}
		}()
		_, err = p.client.UploadFile(ctx, p.container, key, f, &azblob.UploadFileOptions{
			Metadata:    map[string]*string{"sha256": to.Ptr(sum)},
			HTTPHeaders: &blob.HTTPHeaders{BlobContentType: to.Ptr(catalog.FormatOf(key).ContentType())},
		})
		return err
	})
	if err != nil {
		return fmt.Errorf("upload: %w", err)
	}
	log.Info().Str("action", "azure_upload").Str("container", p.container).Str("key", key).
		Int("attempts", attempts).Int64("size", size).Dur("elapsed_ms", time.Since(start)).Msg("upload OK")

	if p.authViaSAS {
		return p.validateByHead(ctx, key, sum, size)
	}
	return p.validateByList(ctx, key, size)
}

func (p *Provider) validateByHead(ctx context.Context, key, sum string, size int64) error {
	start := time.Now()
	attempts, err := p.withRetry(ctx, "azure_head", key, func(ctx context.Context) error {
		remoteSize, remoteSHA, err := p.headSizeAndSHA(ctx, key)
		if err != nil {
			return err
		}
		return compareRemote(size, remoteSize, sum, remoteSHA)
	})
	if err != nil {
		return fmt.Errorf("validate (head): %w", err)
	}
	log.Info().Str("action", "azure_head").Str("container", p.container).Str("key", key).
		Int("attempts", attempts).Dur("elapsed_ms", time.Since(start)).Msg("validation OK (sha256 & size)")
	return nil
}

func (p *Provider) validateByList(ctx context.Context, key string, size int64) error {
	start := time.Now()
	attempts, err := p.withRetry(ctx, "azure_list_validate", key, func(ctx context.Context) error {
		found, remoteSize, err := p.sizeByList(ctx, key)
		if err != nil {
			return err
		}
		if !found {
			return fmt.Errorf("uploaded catalog not found at %q", key)
		}
		if remoteSize != size {
			return fmt.Errorf("size mismatch: local=%d, remote=%d", size, remoteSize)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("validate (list): %w", err)
	}
	log.Info().Str("action", "azure_list_validate").Str("container", p.container).Str("key", key).
		Int("attempts", attempts).Dur("elapsed_ms", time.Since(start)).Msg("validation OK (size)")
	return nil
}

// compareRemote checks what a HEAD returned against the local file.
func compareRemote(localSize, remoteSize int64, localSHA, remoteSHA string) error {
	if remoteSize != localSize {
		return fmt.Errorf("size mismatch: local=%d, remote=%d", localSize, remoteSize)
	}
	if remoteSHA == "" {
		return fmt.Errorf("missing metadata: sha256")
	}
	if !strings.EqualFold(remoteSHA, localSHA) {
		return fmt.Errorf("sha256 mismatch: local=%s, remote=%s", localSHA, remoteSHA)
	}
	return nil
}

// Download fetches a published catalog to a local path with retries.
func (p *Provider) Download(ctx context.Context, source, target string) error {
	key := normalizeKey(source)

	start := time.Now()
	attempts, err := p.withRetry(ctx, "azure_download", key, func(ctx context.Context) error {
		out, err := os.Create(target)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := out.Close(); cerr != nil {
				log.Warn().Err(cerr).Str("file", target).Msg("failed to close local file after download")
			}
		}()
		_, err = p.client.DownloadFile(ctx, p.container, key, out, nil)
		return err
	})
	if err != nil {
		return err
	}
	log.Info().Str("action", "azure_download").Str("container", p.container).Str("key", key).
		Str("local", target).Int("attempts", attempts).Dur("elapsed_ms", time.Since(start)).Msg("download OK")
	return nil
}

func normalizeKey(k string) string {
	return strings.TrimPrefix(k, "/")
}
