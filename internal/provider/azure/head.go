package azure

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// blobURL returns the SAS-signed URL of key.
func (p *Provider) blobURL(key string) string {
	return p.endpoint + p.container + "/" + normalizeKey(key) + "?" + p.sas
}

// headSizeAndSHA does a direct HEAD (SAS) to read Content-Length and x-ms-meta-sha256.
func (p *Provider) headSizeAndSHA(ctx context.Context, key string) (int64, string, error) {
	url := p.blobURL(key)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, http.NoBody)
	if err != nil {
		return 0, "", err
	}
	cli := p.httpClient
	if cli == nil {
		cli = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := cli.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		// The SAS is part of the URL; keep it out of errors and logs.
		return 0, "", &statusError{Code: resp.StatusCode, Status: resp.Status}
	}

	cl := resp.Header.Get("Content-Length")
	if cl == "" {
		return 0, "", fmt.Errorf("missing Content-Length")
	}
	n, err := strconv.ParseInt(cl, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("parse Content-Length: %w", err)
	}
	return n, resp.Header.Get("x-ms-meta-sha256"), nil
}

type statusError struct {
	Code   int
	Status string
}

func (e *statusError) Error() string { return "HEAD blob: " + e.Status }
