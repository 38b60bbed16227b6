// Package publicip resolves the host's public address through an external
// geolocation service.
package publicip

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"sysglance/internal/model"
)

// DefaultEndpoint is the geolocation service queried when none is configured.
const DefaultEndpoint = "https://ipinfo.io/json"

// RequestError reports a transport failure before a response body could be
// read.
type RequestError struct {
	Err error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("public ip request failed: %v", e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// DecodeError reports a response body that did not deserialize into the
// expected shape.
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("public ip response decode failed: %v", e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Resolver performs single-attempt lookups. No retry, no cache: a failed
// lookup is reported to the caller, who may simply invoke again.
type Resolver struct {
	endpoint string
	client   *http.Client
}

func New(endpoint string) *Resolver {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &Resolver{
		endpoint: endpoint,
		client:   &http.Client{},
	}
}

// Resolve issues one GET to the geolocation endpoint and decodes the reply.
// Geolocation fields missing from the response stay absent in the result;
// unexpected extra fields are ignored.
func (r *Resolver) Resolve(ctx context.Context) (*model.PublicIPInfo, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint, nil)
	if err != nil {
		return nil, &RequestError{Err: err}
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, &RequestError{Err: err}
	}
	defer resp.Body.Close()

	var info model.PublicIPInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, &DecodeError{Err: err}
	}
	return &info, nil
}
