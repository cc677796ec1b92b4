package services

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"mockmate/interview/internal/models"
)

func TestGenerateRoadmap_ModelPayload(t *testing.T) {
	gemini := &fakeGemini{responses: []string{
		"```json\n" +
			`{"focus_areas": ["Distributed systems"], "actions": ["Read DDIA"], "resources": ["https://example.com/ddia"]}` +
			"\n```",
	}}
	roadmaps := NewRoadmapService(gemini)

	roadmap := roadmaps.Generate(context.Background(), completedEvaluation(75), "Backend Engineer")

	require.Equal(t, "sess-report", roadmap.SessionID)
	require.Equal(t, models.StringList{"Distributed systems"}, roadmap.FocusAreas)
	require.Equal(t, models.StringList{"Read DDIA"}, roadmap.Actions)
	require.Equal(t, models.StringList{"https://example.com/ddia"}, roadmap.Resources)
}

func TestGenerateRoadmap_CallFailure(t *testing.T) {
	gemini := &fakeGemini{err: fmt.Errorf("offline")}
	roadmaps := NewRoadmapService(gemini)

	roadmap := roadmaps.Generate(context.Background(), completedEvaluation(75), "")

	require.Equal(t, models.StringList{"Follow-up with mentor", "Project-based learning"}, roadmap.FocusAreas)
	require.NotEmpty(t, roadmap.Actions)
	require.NotEmpty(t, roadmap.Resources)
}

func TestGenerateRoadmap_ParseFailure(t *testing.T) {
	gemini := &fakeGemini{responses: []string{"I cannot produce JSON today"}}
	roadmaps := NewRoadmapService(gemini)

	roadmap := roadmaps.Generate(context.Background(), completedEvaluation(75), "")

	require.Equal(t, models.StringList{
		"Technical depth",
		"Confidence building",
		"Professional communication",
	}, roadmap.FocusAreas)
	require.Len(t, roadmap.Actions, 3)
	require.Len(t, roadmap.Resources, 2)
}
