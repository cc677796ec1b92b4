package services

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// AvatarService turns interviewer text into a talking-avatar video with
// built-in speech synthesis. The returned string is the playable media URL,
// or the bare talk id when the service finishes without exposing one.
type AvatarService interface {
	GenerateVideo(ctx context.Context, text string) (string, error)
}

// DIDOptions configures the D-ID talks adapter. APIKey is the
// "email:password" pair sent as Basic auth.
type DIDOptions struct {
	APIKey         string
	BaseURL        string
	PresenterImage string
	VoiceID        string
	PollInterval   time.Duration
	PollTimeout    time.Duration
}

type didService struct {
	opts   DIDOptions
	client *http.Client
}

func NewAvatarService(opts DIDOptions) AvatarService {
	if opts.PollInterval <= 0 {
		opts.PollInterval = 2 * time.Second
	}
	if opts.PollTimeout <= 0 {
		opts.PollTimeout = 180 * time.Second
	}

	return &didService{
		opts:   opts,
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

var terminalDoneStatuses = map[string]bool{
	"done":      true,
	"completed": true,
	"succeeded": true,
	"finished":  true,
	"ready":     true,
}

// GenerateVideo implements AvatarService. It submits a talk and polls the
// status endpoint until a terminal status or the configured timeout.
func (d *didService) GenerateVideo(ctx context.Context, text string) (string, error) {
	if d.opts.APIKey == "" {
		return "", fmt.Errorf("DID_API_KEY is not configured")
	}

	talkID, err := d.createTalk(ctx, text)
	if err != nil {
		return "", err
	}

	log.Printf("🎬 D-ID talk created: %s\n", talkID)
	return d.pollTalk(ctx, talkID)
}

func (d *didService) authHeader() string {
	encoded := base64.StdEncoding.EncodeToString([]byte(d.opts.APIKey))
	return "Basic " + encoded
}

func (d *didService) createTalk(ctx context.Context, text string) (string, error) {
	script := map[string]interface{}{
		"type":  "text",
		"input": text,
	}
	if d.opts.VoiceID != "" {
		script["provider"] = map[string]string{
			"type":     "microsoft",
			"voice_id": d.opts.VoiceID,
		}
	}

	payload := map[string]interface{}{
		"source": map[string]string{
			"type": "image",
			"url":  d.opts.PresenterImage,
		},
		"script": script,
		"config": map[string]string{
			"format":     "mp4",
			"resolution": "720p",
		},
		"metadata": map[string]string{
			"generated_by": "mock-interview-backend",
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal talk payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, d.opts.BaseURL+"/talks", bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build talk request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", d.authHeader())

	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call D-ID create: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read D-ID response: %w", err)
	}

	var result map[string]interface{}
	if err := json.Unmarshal(raw, &result); err != nil {
		return "", fmt.Errorf("non-JSON response from D-ID create (%d): %s", resp.StatusCode, truncate(string(raw), 200))
	}

	// The talk id moves around between API revisions
	block := dataBlock(result)
	talkID := stringField(result, "id")
	if talkID == "" {
		talkID = stringField(block, "id")
	}
	if talkID == "" {
		talkID = stringField(block, "video_id")
	}
	if talkID == "" {
		talkID = stringField(result, "video_id")
	}

	if talkID == "" {
		return "", fmt.Errorf("no talk id returned by D-ID (%d): %s", resp.StatusCode, truncate(string(raw), 200))
	}

	return talkID, nil
}

func (d *didService) pollTalk(ctx context.Context, talkID string) (string, error) {
	statusURL := fmt.Sprintf("%s/talks/%s", d.opts.BaseURL, talkID)
	deadline := time.Now().Add(d.opts.PollTimeout)

	for {
		status, videoURL, err := d.fetchStatus(ctx, statusURL)
		if err != nil {
			log.Printf("⚠️ D-ID status poll failed: %v\n", err)
		} else {
			switch {
			case terminalDoneStatuses[status]:
				if videoURL != "" {
					return videoURL, nil
				}
				// Finished without a direct URL; hand back the id so the
				// caller can fetch the media later.
				return talkID, nil
			case status == "failed" || status == "error":
				return "", fmt.Errorf("D-ID video generation failed for talk %s", talkID)
			}
		}

		if time.Now().After(deadline) {
			return "", fmt.Errorf("timed out waiting for D-ID talk %s", talkID)
		}

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(d.opts.PollInterval):
		}
	}
}

func (d *didService) fetchStatus(ctx context.Context, statusURL string) (string, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, statusURL, nil)
	if err != nil {
		return "", "", fmt.Errorf("failed to build status request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", d.authHeader())

	resp, err := d.client.Do(req)
	if err != nil {
		return "", "", fmt.Errorf("failed to poll status: %w", err)
	}
	defer resp.Body.Close()

	var result map[string]interface{}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", "", fmt.Errorf("non-JSON status response: %w", err)
	}

	block := dataBlock(result)

	status := stringField(block, "status")
	if status == "" {
		status = stringField(block, "state")
	}
	status = strings.ToLower(status)

	videoURL := stringField(block, "video_url")
	if videoURL == "" {
		videoURL = stringField(block, "result_url")
	}
	if videoURL == "" {
		if video, ok := block["video"].(map[string]interface{}); ok {
			videoURL = stringField(video, "url")
		}
	}

	return status, videoURL, nil
}

// dataBlock normalizes responses that wrap the talk inside a "data" object.
func dataBlock(result map[string]interface{}) map[string]interface{} {
	if data, ok := result["data"].(map[string]interface{}); ok {
		return data
	}
	return result
}

func stringField(m map[string]interface{}, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key].(string); ok {
		return v
	}
	return ""
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
