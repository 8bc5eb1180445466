package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pfrederiksen/escala/internal/locale"
	"github.com/pfrederiksen/escala/internal/schedule"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// NoEventsMessage is printed in text mode when nothing is upcoming
const NoEventsMessage = "Nenhuma escala futura encontrada."

// TextOptions controls the text rendering
type TextOptions struct {
	// Location is the display zone. Nil shows each date in the offset it
	// was written with.
	Location *time.Location
	// StripHTML reduces rich-text hymn content to plain text
	StripHTML bool
}

// WriteOutput writes the selected items in the specified format.
// opts only affects the text format.
func WriteOutput(w io.Writer, items []schedule.Item, format OutputFormat, opts TextOptions) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, items)
	case FormatText:
		return writeText(w, items, opts)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs the items as an indented JSON array, leaving non-ASCII
// and HTML characters unescaped
func writeJSON(w io.Writer, items []schedule.Item) error {
	if items == nil {
		items = []schedule.Item{}
	}
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(items)
}

// writeText outputs one pt-BR block per item
func writeText(w io.Writer, items []schedule.Item, opts TextOptions) error {
	text, err := renderText(items, opts)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, text)
	return err
}

// renderText builds the text listing
func renderText(items []schedule.Item, opts TextOptions) (string, error) {
	if len(items) == 0 {
		return NoEventsMessage + "\n", nil
	}

	var b bytes.Buffer
	for i, item := range items {
		start, err := item.Start()
		if err != nil {
			return "", err
		}
		if opts.Location != nil {
			start = start.In(opts.Location)
		}

		fmt.Fprintf(&b, "--- Escala %d ---\n", i+1)
		fmt.Fprintf(&b, "Data: %s\n", locale.FormatLong(start))

		b.WriteString("\nEquipe:\n")
		for _, member := range item.ScheduleMembers {
			name := strings.TrimSpace(member.Person.FullName)
			fmt.Fprintf(&b, "  - %s (%s)\n", name, member.Responsibility.Name)
		}

		b.WriteString("\nHinos:\n")
		for _, hymn := range item.Hymns() {
			content := hymn.Content
			if opts.StripHTML {
				content = plainText(content)
			}
			fmt.Fprintf(&b, "  - %s\n", content)
		}

		b.WriteString("\n\n")
	}

	return b.String(), nil
}
