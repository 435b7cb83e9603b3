// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package mistral

// File describes an uploaded file as returned by the files API.
type File struct {
	ID        string `json:"id"`
	Object    string `json:"object,omitempty"`
	Filename  string `json:"filename"`
	Purpose   string `json:"purpose,omitempty"`
	CreatedAt int64  `json:"created_at,omitempty"`
}

// FileList is the envelope of the list-files endpoint.
type FileList struct {
	Data []File `json:"data"`
}

// SignedURLResponse carries a short-lived access URL for an uploaded file.
type SignedURLResponse struct {
	URL       string `json:"url"`
	ExpiresAt int64  `json:"expires_at,omitempty"`
}

// OCROptions controls how the OCR engine treats embedded images.
type OCROptions struct {
	// IncludeImageBase64 inlines extracted images into the result when true.
	IncludeImageBase64 bool
	// ImageLimit caps the number of images extracted per document.
	ImageLimit int
}

type ocrDocument struct {
	Type        string `json:"type"`
	DocumentURL string `json:"document_url"`
}

type ocrRequest struct {
	Model              string      `json:"model"`
	Document           ocrDocument `json:"document"`
	IncludeImageBase64 bool        `json:"include_image_base64"`
	ImageLimit         int         `json:"image_limit"`
}

// OCRResponse is the full structured OCR result for one document.
type OCRResponse struct {
	Pages     []Page    `json:"pages"`
	Model     string    `json:"model,omitempty"`
	UsageInfo UsageInfo `json:"usage_info,omitempty"`
}

// Page is one page of an OCR result. Index is 0-based and matches the
// source document's page order; indices are unique within one result.
type Page struct {
	Index      int        `json:"index"`
	Markdown   string     `json:"markdown"`
	Images     []Image    `json:"images,omitempty"`
	Dimensions Dimensions `json:"dimensions,omitempty"`
}

// Image is an extracted image region on a page.
type Image struct {
	ID           string `json:"id"`
	TopLeftX     int    `json:"top_left_x,omitempty"`
	TopLeftY     int    `json:"top_left_y,omitempty"`
	BottomRightX int    `json:"bottom_right_x,omitempty"`
	BottomRightY int    `json:"bottom_right_y,omitempty"`
	ImageBase64  string `json:"image_base64,omitempty"`
}

// Dimensions records the rendered page geometry.
type Dimensions struct {
	DPI    int `json:"dpi,omitempty"`
	Height int `json:"height,omitempty"`
	Width  int `json:"width,omitempty"`
}

// UsageInfo reports what the service processed for billing purposes.
type UsageInfo struct {
	PagesProcessed int  `json:"pages_processed,omitempty"`
	DocSizeBytes   *int `json:"doc_size_bytes,omitempty"`
}
