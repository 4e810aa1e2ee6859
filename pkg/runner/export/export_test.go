package export

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/store"
)

func newService(t *testing.T) *app.Service {
	t.Helper()
	now := time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)
	svc := &app.Service{
		Store: store.NewAdapter(store.NewMemory()),
		Now:   func() time.Time { return now },
		NewID: func(prefix string) string { return prefix + "-1" },
	}
	_, err := svc.Create(context.Background(), challenge.Input{
		TaskText:        "clean the desk",
		Intensity:       challenge.Hardcore,
		DurationMinutes: 30,
		TargetType:      challenge.TargetThisWeek,
		Recurrence:      challenge.Weekly,
	})
	require.NoError(t, err)
	return svc
}

func TestExportYAMLKeepsCamelCase(t *testing.T) {
	svc := newService(t)
	var out bytes.Buffer
	require.NoError(t, (&Export{Service: svc, Out: &out}).Do(context.Background()))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &got))
	require.Contains(t, got, "exportedAt")
	require.Contains(t, got, "notifications")

	pending, ok := got["pending"].([]any)
	require.True(t, ok)
	require.Len(t, pending, 1)
	first := pending[0].(map[string]any)
	require.Equal(t, "clean the desk", first["taskText"])
	require.Equal(t, "hardcore", first["intensity"])
	require.Equal(t, "2026-10-17", first["targetDateISO"])
}

func TestExportJSON(t *testing.T) {
	svc := newService(t)
	var out bytes.Buffer
	require.NoError(t, (&Export{Service: svc, Out: &out, Format: FormatJSON}).Do(context.Background()))

	var doc Document
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	require.Len(t, doc.Pending, 1)
	require.Equal(t, challenge.StatusPending, doc.Pending[0].Status)
	require.Zero(t, doc.Stats.TotalXP)
}

func TestExportUnknownFormat(t *testing.T) {
	svc := newService(t)
	err := (&Export{Service: svc, Out: &bytes.Buffer{}, Format: "xml"}).Do(context.Background())
	require.Error(t, err)
}
