// Package export provides the runner logic for dumping all app data.
package export

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Omkarop0808/Excuse-Killer/pkg/app"
	"github.com/Omkarop0808/Excuse-Killer/pkg/challenge"
	"github.com/Omkarop0808/Excuse-Killer/pkg/game"
)

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Document is everything the app persists plus the derived stats.
type Document struct {
	ExportedAt    time.Time                `json:"exportedAt"`
	Stats         game.Stats               `json:"stats"`
	Pending       []challenge.Challenge    `json:"pending"`
	Completions   []challenge.Completion   `json:"completions"`
	Notifications []challenge.Notification `json:"notifications"`
}

type Export struct {
	Format  string
	Out     io.Writer
	Service *app.Service
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no service")
	}
	out := n.Out
	if out == nil {
		out = os.Stdout
	}
	doc, err := Collect(ctx, n.Service)
	if err != nil {
		return err
	}
	switch n.Format {
	case "", FormatYAML:
		return WriteYAML(out, doc)
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(doc)
	default:
		return fmt.Errorf("unknown export format %q, want %s or %s", n.Format, FormatYAML, FormatJSON)
	}
}

// Collect reads every collection from the service.
func Collect(ctx context.Context, svc *app.Service) (Document, error) {
	doc := Document{ExportedAt: svc.Clock()}
	var err error
	if doc.Stats, err = svc.Stats(ctx); err != nil {
		return doc, err
	}
	if doc.Pending, err = svc.Pending(ctx); err != nil {
		return doc, err
	}
	if doc.Completions, err = svc.Completions(ctx); err != nil {
		return doc, err
	}
	if doc.Notifications, err = svc.Notifications(ctx); err != nil {
		return doc, err
	}
	return doc, nil
}

// WriteYAML renders doc as YAML with the same camelCase keys as the stored
// JSON.
func WriteYAML(w io.Writer, doc Document) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	var tree any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return err
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(tree); err != nil {
		return err
	}
	return enc.Close()
}
