// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared by remote API clients.
package httputil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// maxErrorBody bounds how much of an error response body is kept.
const maxErrorBody = 64 << 10

// APIError describes a non-2xx response from a remote API. The body excerpt
// is kept verbatim so the service's own message reaches the user.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	body := strings.TrimSpace(e.Body)
	if body == "" {
		return fmt.Sprintf("api error: status %d", e.StatusCode)
	}
	return fmt.Sprintf("api error: status %d: %s", e.StatusCode, body)
}

// CheckResponse returns nil for 2xx responses. For anything else it slurps
// up to 64 KiB of the body and returns an *APIError. The response body is
// consumed on error; the caller should not read it again.
func CheckResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	slurp, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{StatusCode: resp.StatusCode, Body: string(slurp)}
}

// DecodeJSON checks the response status and decodes a JSON body into v.
// The body is closed in all cases.
func DecodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := CheckResponse(resp); err != nil {
		return err
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// Discard checks the response status and drains the body without decoding.
// Used for calls whose success carries no payload of interest.
func Discard(resp *http.Response) error {
	defer resp.Body.Close()
	if err := CheckResponse(resp); err != nil {
		return err
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}
