// Package idcard discovers the identity of the application instance the
// current process runs in.
//
// On a managed device the runtime exposes the application instance ID
// through an environment variable; the fleet-management service knows the
// rest (application name, owning device, health, tags). Resolve pages
// through the service's instance listing to find the matching record.
// Identity is informational, so missing data degrades to warnings and
// empty fields instead of failing the caller.
package idcard

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-cleanhttp"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"
)

// DefaultInstanceIDEnvVar is the environment variable holding the
// application instance ID on a managed device.
const DefaultInstanceIDEnvVar = "APPLICATION_INSTANCE_ID"

// defaultPageSize is the page size requested from the instance listing.
const defaultPageSize = 25

// requestIDHeader correlates client requests with service-side logs.
const requestIDHeader = "X-Request-Id"

// AutoIdentity describes the application instance and the device it runs
// on. Fields are empty when the corresponding data could not be resolved.
type AutoIdentity struct {
	ApplicationID          string
	ApplicationName        string
	ApplicationDescription string
	ApplicationCreatedTime time.Time
	ApplicationStatus      string
	ApplicationTags        map[string]string
	DeviceID               string
	DeviceName             string
}

// Resolver queries the fleet-management service for the running instance.
type Resolver struct {
	endpoint string
	client   *retryablehttp.Client
	logger   *zap.Logger
	envVar   string
	pageSize int
}

// ResolverOption configures a Resolver.
type ResolverOption func(*Resolver) error

// WithLogger replaces the logger used for warnings.
func WithLogger(logger *zap.Logger) ResolverOption {
	return func(r *Resolver) error {
		if logger == nil {
			return fmt.Errorf("logger must not be nil")
		}
		r.logger = logger
		return nil
	}
}

// WithHTTPClient replaces the underlying HTTP client, e.g. for tests or
// custom TLS setups.
func WithHTTPClient(client *http.Client) ResolverOption {
	return func(r *Resolver) error {
		if client == nil {
			return fmt.Errorf("http client must not be nil")
		}
		r.client.HTTPClient = client
		return nil
	}
}

// WithInstanceIDEnvVar overrides the environment variable consulted for the
// application instance ID.
func WithInstanceIDEnvVar(name string) ResolverOption {
	return func(r *Resolver) error {
		if name == "" {
			return fmt.Errorf("environment variable name must not be empty")
		}
		r.envVar = name
		return nil
	}
}

// WithPageSize overrides the listing page size.
func WithPageSize(size int) ResolverOption {
	return func(r *Resolver) error {
		if size < 1 {
			return fmt.Errorf("page size must be positive, got %d", size)
		}
		r.pageSize = size
		return nil
	}
}

// NewResolver creates a Resolver against the given service endpoint, for
// example "https://fleet.example.com/v1".
func NewResolver(endpoint string, opts ...ResolverOption) (*Resolver, error) {
	if _, err := url.ParseRequestURI(endpoint); err != nil {
		return nil, fmt.Errorf("invalid fleet endpoint %q: %w", endpoint, err)
	}

	client := retryablehttp.NewClient()
	client.HTTPClient = cleanhttp.DefaultPooledClient()
	client.RetryMax = 3
	client.Logger = nil

	r := &Resolver{
		endpoint: endpoint,
		client:   client,
		logger:   zap.NewNop(),
		envVar:   DefaultInstanceIDEnvVar,
		pageSize: defaultPageSize,
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// applicationInstance is the service's wire representation of one instance.
type applicationInstance struct {
	ApplicationInstanceID           string            `json:"applicationInstanceId"`
	Name                            string            `json:"name"`
	Description                     string            `json:"description"`
	DefaultRuntimeContextDevice     string            `json:"defaultRuntimeContextDevice"`
	DefaultRuntimeContextDeviceName string            `json:"defaultRuntimeContextDeviceName"`
	CreatedTime                     time.Time         `json:"createdTime"`
	HealthStatus                    string            `json:"healthStatus"`
	Tags                            map[string]string `json:"tags"`
}

// listInstancesResponse is one page of the instance listing.
type listInstancesResponse struct {
	ApplicationInstances []applicationInstance `json:"applicationInstances"`
	NextToken            string                `json:"nextToken"`
}

// Resolve looks up the running application instance. When the environment
// variable is unset or the instance is absent from the listing, it warns
// and returns a partially filled identity; only transport and decoding
// failures are errors.
func (r *Resolver) Resolve(ctx context.Context) (*AutoIdentity, error) {
	appID := os.Getenv(r.envVar)
	if appID == "" {
		r.logger.Warn("application instance id not found in environment",
			zap.String("env_var", r.envVar))
		return &AutoIdentity{}, nil
	}

	identity := &AutoIdentity{ApplicationID: appID}

	instance, err := r.findInstance(ctx, appID)
	if err != nil {
		return nil, err
	}
	if instance == nil {
		r.logger.Warn("application instance not found in fleet listing",
			zap.String("application_id", appID))
		return identity, nil
	}

	identity.ApplicationName = instance.Name
	identity.ApplicationDescription = instance.Description
	identity.ApplicationCreatedTime = instance.CreatedTime
	identity.ApplicationStatus = instance.HealthStatus
	identity.ApplicationTags = instance.Tags
	identity.DeviceID = instance.DefaultRuntimeContextDevice
	identity.DeviceName = instance.DefaultRuntimeContextDeviceName
	return identity, nil
}

// findInstance pages through the instance listing until it sees appID or
// runs out of pages.
func (r *Resolver) findInstance(ctx context.Context, appID string) (*applicationInstance, error) {
	nextToken := ""
	for {
		page, err := r.listInstances(ctx, nextToken)
		if err != nil {
			return nil, err
		}
		for _, instance := range page.ApplicationInstances {
			if instance.ApplicationInstanceID == appID {
				return &instance, nil
			}
		}
		if page.NextToken == "" {
			return nil, nil
		}
		nextToken = page.NextToken
	}
}

// listInstances fetches one page of the application instance listing.
func (r *Resolver) listInstances(ctx context.Context, nextToken string) (*listInstancesResponse, error) {
	endpoint := fmt.Sprintf("%s/application-instances?maxResults=%d", r.endpoint, r.pageSize)
	if nextToken != "" {
		endpoint += "&nextToken=" + url.QueryEscape(nextToken)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build instance listing request: %w", err)
	}
	req.Header.Set(requestIDHeader, uuid.NewString())

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("list application instances: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("list application instances: unexpected status %s", resp.Status)
	}

	var page listInstancesResponse
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode instance listing: %w", err)
	}
	return &page, nil
}
