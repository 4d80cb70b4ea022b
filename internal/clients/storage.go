package clients

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/magnolias-hr/magnolias-api/internal/apperrors"
)

const cvBucket = "cvs"

// SupabaseStorage uploads and removes CV files through the Supabase
// Storage object API. Credentials are validated at startup by the config
// loader, so a constructed client is always usable.
type SupabaseStorage struct {
	baseURL    string
	serviceKey string
	http       *http.Client
}

func NewSupabaseStorage(baseURL, serviceKey string) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL:    strings.TrimRight(baseURL, "/"),
		serviceKey: serviceKey,
		http:       &http.Client{Timeout: requestTimeout},
	}
}

// UploadCV stores the file as cv-{applicantID}-{unixmilli}.pdf, overwriting
// any existing object of that name, and returns the public URL.
func (s *SupabaseStorage) UploadCV(ctx context.Context, content []byte, contentType string, applicantID uint) (string, error) {
	name := fmt.Sprintf("cv-%d-%d.pdf", applicantID, time.Now().UnixMilli())
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, cvBucket, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("%w: build upload request: %v", apperrors.ErrExternal, err)
	}
	if contentType == "" {
		contentType = "application/pdf"
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("x-upsert", "true")

	resp, err := s.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: upload CV: %v", apperrors.ErrExternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("%w: upload CV: storage returned %d: %s", apperrors.ErrExternal, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	return fmt.Sprintf("%s/storage/v1/object/public/%s/%s", s.baseURL, cvBucket, name), nil
}

// Remove deletes the object whose name is the final path segment of the
// public URL returned by UploadCV.
func (s *SupabaseStorage) Remove(ctx context.Context, fileURL string) error {
	name, err := objectName(fileURL)
	if err != nil {
		return err
	}
	endpoint := fmt.Sprintf("%s/storage/v1/object/%s/%s", s.baseURL, cvBucket, name)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: build delete request: %v", apperrors.ErrExternal, err)
	}
	req.Header.Set("Authorization", "Bearer "+s.serviceKey)

	resp, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: delete CV: %v", apperrors.ErrExternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: delete CV: storage returned %d", apperrors.ErrExternal, resp.StatusCode)
	}
	return nil
}

func objectName(fileURL string) (string, error) {
	parsed, err := url.Parse(fileURL)
	if err != nil {
		return "", fmt.Errorf("%w: invalid CV URL", apperrors.ErrValidation)
	}
	segments := strings.Split(strings.TrimRight(parsed.Path, "/"), "/")
	name := segments[len(segments)-1]
	if name == "" {
		return "", fmt.Errorf("%w: CV URL has no object name", apperrors.ErrValidation)
	}
	return name, nil
}
