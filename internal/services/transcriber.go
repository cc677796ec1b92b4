package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// TranscriberService converts uploaded speech audio into answer text using a
// Whisper-compatible transcription endpoint.
type TranscriberService interface {
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

type TranscriberOptions struct {
	APIKey  string
	BaseURL string
	Model   string
}

type transcriberService struct {
	opts   TranscriberOptions
	client *http.Client
}

func NewTranscriberService(opts TranscriberOptions) TranscriberService {
	if opts.Model == "" {
		opts.Model = "whisper-1"
	}

	return &transcriberService{
		opts:   opts,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// Transcribe implements TranscriberService. One attempt, no retry; callers
// treat an empty transcript as a missing answer.
func (t *transcriberService) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	if t.opts.APIKey == "" {
		return "", fmt.Errorf("TRANSCRIBER_API_KEY is not configured")
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("failed to copy audio data: %w", err)
	}
	if err := writer.WriteField("model", t.opts.Model); err != nil {
		return "", fmt.Errorf("failed to write model field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to close multipart body: %w", err)
	}

	url := strings.TrimRight(t.opts.BaseURL, "/") + "/audio/transcriptions"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("failed to build transcription request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.opts.APIKey)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := t.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call transcription service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("transcription service returned %d: %s", resp.StatusCode, truncate(string(raw), 200))
	}

	var result struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("failed to decode transcription response: %w", err)
	}

	return strings.TrimSpace(result.Text), nil
}
