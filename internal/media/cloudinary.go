package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"time"
)

// Compile-time interface check.
var _ Uploader = (*CloudinaryClient)(nil)

const cloudinaryAPIURL = "https://api.cloudinary.com/v1_1"

// Config holds the Cloudinary unsigned-upload settings.
type Config struct {
	// BaseURL overrides the Cloudinary API endpoint, used in tests.
	BaseURL      string
	CloudName    string
	UploadPreset string
}

// CloudinaryClient implements Uploader against the Cloudinary unsigned
// upload API.
type CloudinaryClient struct {
	baseURL      string
	cloudName    string
	uploadPreset string
	client       *http.Client
}

// NewCloudinaryClient creates a CloudinaryClient with a 60-second timeout
// HTTP client.
func NewCloudinaryClient(cfg Config) *CloudinaryClient {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = cloudinaryAPIURL
	}

	return &CloudinaryClient{
		baseURL:      baseURL,
		cloudName:    cfg.CloudName,
		uploadPreset: cfg.UploadPreset,
		client: &http.Client{
			Timeout: 60 * time.Second,
		},
	}
}

// cloudinaryResponse is the response body from the Cloudinary upload API.
type cloudinaryResponse struct {
	SecureURL string `json:"secure_url"`
	Error     *struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Upload posts the image bytes as a multipart form and returns the hosted
// secure URL. The call blocks until the media host answers; there are no
// retries.
func (c *CloudinaryClient) Upload(ctx context.Context, data []byte, filename, folder string) (string, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: creating form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return "", fmt.Errorf("cloudinary upload: writing form file: %w", err)
	}

	if err := writer.WriteField("upload_preset", c.uploadPreset); err != nil {
		return "", fmt.Errorf("cloudinary upload: writing upload_preset: %w", err)
	}
	if folder != "" {
		if err := writer.WriteField("folder", folder); err != nil {
			return "", fmt.Errorf("cloudinary upload: writing folder: %w", err)
		}
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("cloudinary upload: closing multipart writer: %w", err)
	}

	url := fmt.Sprintf("%s/%s/image/upload", c.baseURL, c.cloudName)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("cloudinary upload: creating request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.client.Do(req)
	if err != nil {
		return "", &UploadError{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UploadError{Status: resp.StatusCode, Message: err.Error()}
	}

	var parsed cloudinaryResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", &UploadError{Status: resp.StatusCode, Message: "invalid response from media host"}
	}

	if parsed.Error != nil {
		return "", &UploadError{Status: resp.StatusCode, Message: parsed.Error.Message}
	}
	if resp.StatusCode != http.StatusOK || parsed.SecureURL == "" {
		return "", &UploadError{Status: resp.StatusCode, Message: "media host returned no url"}
	}

	return parsed.SecureURL, nil
}
