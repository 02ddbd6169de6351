package azure

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"

	"github.com/Chapsvision-dev/script-registry/internal/config"
	"github.com/Chapsvision-dev/script-registry/internal/provider"
)

func TestHeadSizeAndSHA(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath, gotQuery = r.URL.Path, r.URL.RawQuery
		if r.Method != http.MethodHead {
			t.Errorf("want HEAD, got %s", r.Method)
		}
		w.Header().Set("Content-Length", "42")
		w.Header().Set("x-ms-meta-sha256", "abc")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	p := &Provider{container: "catalogs", endpoint: srv.URL + "/", sas: "sv=1&sig=x", httpClient: srv.Client()}
	size, sha, err := p.headSizeAndSHA(context.Background(), "/scripts/catalog/a.json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if size != 42 || sha != "abc" {
		t.Fatalf("got size=%d sha=%q", size, sha)
	}
	if gotPath != "/catalogs/scripts/catalog/a.json" || gotQuery != "sv=1&sig=x" {
		t.Fatalf("unexpected request %s?%s", gotPath, gotQuery)
	}
}

func TestHeadSizeAndSHA_StatusIsRetryableAndHidesSAS(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	p := &Provider{container: "c", endpoint: srv.URL + "/", sas: "sig=secret", httpClient: srv.Client()}
	_, _, err := p.headSizeAndSHA(context.Background(), "k")
	if err == nil {
		t.Fatal("want error")
	}
	if strings.Contains(err.Error(), "secret") {
		t.Fatalf("error leaks SAS: %v", err)
	}
	if !p.isAzRetryable(err) {
		t.Fatalf("503 should be retryable: %v", err)
	}
}

func TestIsAzRetryable(t *testing.T) {
	p := &Provider{}
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"plain", errors.New("boom"), false},
		{"429", &azcore.ResponseError{StatusCode: http.StatusTooManyRequests}, true},
		{"500", &azcore.ResponseError{StatusCode: 500}, true},
		{"404", &azcore.ResponseError{StatusCode: 404}, false},
		{"server busy", &azcore.ResponseError{StatusCode: 400, ErrorCode: "ServerBusy"}, true},
		{"head 408", &statusError{Code: http.StatusRequestTimeout, Status: "408"}, true},
		{"head 403", &statusError{Code: http.StatusForbidden, Status: "403"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := p.isAzRetryable(tt.err); got != tt.want {
				t.Fatalf("want %v, got %v", tt.want, got)
			}
		})
	}
}

func TestCompareRemote(t *testing.T) {
	if err := compareRemote(10, 10, "ABC", "abc"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := compareRemote(10, 11, "abc", "abc"); err == nil {
		t.Fatal("want size mismatch")
	}
	if err := compareRemote(10, 10, "abc", ""); err == nil {
		t.Fatal("want missing metadata error")
	}
	if err := compareRemote(10, 10, "abc", "def"); err == nil {
		t.Fatal("want sha mismatch")
	}
}

func TestEndpointFor(t *testing.T) {
	if got := endpointFor(config.AzureConfig{Account: "acct"}); got != "https://acct.blob.core.windows.net/" {
		t.Fatalf("unexpected endpoint %q", got)
	}
	if got := endpointFor(config.AzureConfig{Account: "acct", Endpoint: "http://127.0.0.1:10000/devstoreaccount1"}); got != "http://127.0.0.1:10000/devstoreaccount1/" {
		t.Fatalf("unexpected endpoint %q", got)
	}
}

func TestFactory(t *testing.T) {
	if _, err := provider.New("azure", "not a config"); err == nil {
		t.Fatal("want invalid config type error")
	}
	if _, err := provider.New("azure", config.Config{Provider: "azure"}); err == nil {
		t.Fatal("want validation error without account/container")
	}
	p, err := provider.New("azure", config.Config{
		Provider: "azure",
		Azure:    config.AzureConfig{Account: "acct", Container: "catalogs", SASToken: "?sv=1&sig=x"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	az, ok := p.(*Provider)
	if !ok || p.Name() != "azure" {
		t.Fatalf("unexpected provider %T", p)
	}
	if !az.authViaSAS || az.sas != "sv=1&sig=x" || az.container != "catalogs" {
		t.Fatalf("unexpected provider state: %+v", az)
	}
}

func TestNormalizeKey(t *testing.T) {
	if normalizeKey("/a/b.json") != "a/b.json" || normalizeKey("a.json") != "a.json" {
		t.Fatal("normalizeKey mismatch")
	}
}
