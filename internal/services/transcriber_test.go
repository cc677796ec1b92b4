package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranscribe(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/audio/transcriptions", r.URL.Path)
		require.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		require.NoError(t, r.ParseMultipartForm(1<<20))
		require.Equal(t, "whisper-1", r.FormValue("model"))

		file, header, err := r.FormFile("file")
		require.NoError(t, err)
		defer file.Close()
		require.Equal(t, "answer.webm", header.Filename)

		content, err := io.ReadAll(file)
		require.NoError(t, err)
		require.Equal(t, "fake audio bytes", string(content))

		json.NewEncoder(w).Encode(map[string]string{"text": "  I worked on pipelines.  "})
	}))
	defer server.Close()

	transcriber := NewTranscriberService(TranscriberOptions{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	text, err := transcriber.Transcribe(context.Background(), strings.NewReader("fake audio bytes"), "answer.webm")
	require.NoError(t, err)
	require.Equal(t, "I worked on pipelines.", text)
}

func TestTranscribe_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream unavailable"))
	}))
	defer server.Close()

	transcriber := NewTranscriberService(TranscriberOptions{
		APIKey:  "test-key",
		BaseURL: server.URL,
	})

	_, err := transcriber.Transcribe(context.Background(), strings.NewReader("audio"), "a.wav")
	require.Error(t, err)
	require.Contains(t, err.Error(), "502")
}

func TestTranscribe_MissingAPIKey(t *testing.T) {
	transcriber := NewTranscriberService(TranscriberOptions{})

	_, err := transcriber.Transcribe(context.Background(), strings.NewReader("audio"), "a.wav")
	require.Error(t, err)
	require.Contains(t, err.Error(), "TRANSCRIBER_API_KEY")
}
