// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mistral is a client for the Mistral files and OCR APIs. It covers
// the five calls the workflow consumes: upload a file, list files by
// purpose, fetch a signed access URL, run OCR on a document URL, and delete
// a file.
package mistral

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/pdiddy/ocr-workbench/internal/httputil"
)

// DefaultBaseURL is the production API endpoint.
const DefaultBaseURL = "https://api.mistral.ai"

// signedURLExpiryHours is the lifetime requested for signed access URLs.
const signedURLExpiryHours = 24

// Client calls the Mistral API. The zero value is not usable; construct
// with NewClient.
type Client struct {
	apiKey     string
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint base. Tests point this at an
// httptest server.
func WithBaseURL(base string) Option {
	return func(c *Client) { c.baseURL = base }
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) { c.userAgent = ua }
}

// NewClient builds a Client authenticated with apiKey. The default HTTP
// client has no timeout: remote calls block until the service responds.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	return c.httpClient.Do(req)
}

// ListFiles enumerates uploaded files filtered by purpose, e.g. "ocr".
func (c *Client) ListFiles(ctx context.Context, purpose string) ([]File, error) {
	u := fmt.Sprintf("%s/v1/files?purpose=%s", c.baseURL, url.QueryEscape(purpose))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("creating list request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	var result FileList
	if err := httputil.DecodeJSON(resp, &result); err != nil {
		return nil, fmt.Errorf("listing files: %w", err)
	}
	return result.Data, nil
}

// UploadFile registers content with the service under the given filename
// and purpose tag.
func (c *Client) UploadFile(ctx context.Context, filename string, content []byte, purpose string) (File, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return File{}, fmt.Errorf("creating form file: %w", err)
	}
	if _, err := part.Write(content); err != nil {
		return File{}, fmt.Errorf("writing form file: %w", err)
	}
	if err := writer.WriteField("purpose", purpose); err != nil {
		return File{}, fmt.Errorf("writing purpose field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return File{}, fmt.Errorf("closing multipart writer: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/files", body)
	if err != nil {
		return File{}, fmt.Errorf("creating upload request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.do(req)
	if err != nil {
		return File{}, fmt.Errorf("uploading %s: %w", filename, err)
	}
	var result File
	if err := httputil.DecodeJSON(resp, &result); err != nil {
		return File{}, fmt.Errorf("uploading %s: %w", filename, err)
	}
	return result, nil
}

// SignedURL fetches a short-lived URL granting read access to an uploaded
// file, suitable for handing to the OCR engine.
func (c *Client) SignedURL(ctx context.Context, fileID string) (string, error) {
	u := fmt.Sprintf("%s/v1/files/%s/url?expiry=%d", c.baseURL, url.PathEscape(fileID), signedURLExpiryHours)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("creating signed URL request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("getting signed URL for %s: %w", fileID, err)
	}
	var result SignedURLResponse
	if err := httputil.DecodeJSON(resp, &result); err != nil {
		return "", fmt.Errorf("getting signed URL for %s: %w", fileID, err)
	}
	return result.URL, nil
}

// ProcessDocument runs OCR on a document reachable at documentURL. The call
// is synchronous: the full structured result comes back in the response.
func (c *Client) ProcessDocument(ctx context.Context, model, documentURL string, opts OCROptions) (*OCRResponse, error) {
	payload := ocrRequest{
		Model: model,
		Document: ocrDocument{
			Type:        "document_url",
			DocumentURL: documentURL,
		},
		IncludeImageBase64: opts.IncludeImageBase64,
		ImageLimit:         opts.ImageLimit,
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshaling OCR request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/ocr", bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating OCR request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("running OCR: %w", err)
	}
	var result OCRResponse
	if err := httputil.DecodeJSON(resp, &result); err != nil {
		return nil, fmt.Errorf("running OCR: %w", err)
	}
	return &result, nil
}

// DeleteFile removes an uploaded file from the service.
func (c *Client) DeleteFile(ctx context.Context, fileID string) error {
	u := fmt.Sprintf("%s/v1/files/%s", c.baseURL, url.PathEscape(fileID))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, u, nil)
	if err != nil {
		return fmt.Errorf("creating delete request: %w", err)
	}
	resp, err := c.do(req)
	if err != nil {
		return fmt.Errorf("deleting %s: %w", fileID, err)
	}
	if err := httputil.Discard(resp); err != nil {
		return fmt.Errorf("deleting %s: %w", fileID, err)
	}
	return nil
}
