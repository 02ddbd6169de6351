package azure

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/azure-sdk-for-go/sdk/storage/azblob"

	"github.com/Chapsvision-dev/script-registry/internal/config"
	"github.com/Chapsvision-dev/script-registry/internal/provider"
)

// endpointFor returns the blob service endpoint, always with a trailing slash.
func endpointFor(c config.AzureConfig) string {
	endpoint := c.Endpoint
	if endpoint == "" {
		endpoint = fmt.Sprintf("https://%s.blob.core.windows.net/", c.Account)
	}
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	return endpoint
}

// newClientFromConfig builds the client and reports whether it authenticates via SAS.
// Priority: 1) SAS  2) Service Principal  3) DefaultAzureCredential.
func newClientFromConfig(c config.AzureConfig) (*azblob.Client, string, bool, error) {
	endpoint := endpointFor(c)

	if sasRaw := strings.TrimSpace(c.SASToken); sasRaw != "" {
		sas := strings.TrimPrefix(sasRaw, "?")
		cl, err := azblob.NewClientWithNoCredential(endpoint+"?"+sas, nil)
		return cl, sas, true, err
	}

	if c.ClientID != "" && c.ClientSecret != "" && c.TenantID != "" {
		cred, err := azidentity.NewClientSecretCredential(c.TenantID, c.ClientID, c.ClientSecret, nil)
		if err != nil {
			return nil, "", false, err
		}
		cl, err := azblob.NewClient(endpoint, cred, nil)
		return cl, "", false, err
	}

	defCred, err := azidentity.NewDefaultAzureCredential(nil)
	if err != nil {
		return nil, "", false, err
	}
	cl, err := azblob.NewClient(endpoint, defCred, nil)
	return cl, "", false, err
}

func init() {
	provider.Register("azure", func(cfg any) (provider.Provider, error) {
		c, ok := cfg.(config.Config)
		if !ok {
			return nil, fmt.Errorf("azure: invalid config type %T", cfg)
		}
		if err := c.ValidateProvider(); err != nil {
			return nil, err
		}
		client, sas, viaSAS, err := newClientFromConfig(c.Azure)
		if err != nil {
			return nil, fmt.Errorf("azure: client: %w", err)
		}
		return &Provider{
			client:     client,
			container:  c.Azure.Container,
			endpoint:   endpointFor(c.Azure),
			sas:        sas,
			authViaSAS: viaSAS,
			ro:         c.RetryOptions(),
		}, nil
	})
}
