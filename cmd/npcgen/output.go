package main

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/npcgen/internal/game/npc"
)

// Output formats accepted by --format.
var validFormats = []string{"json", "yaml"}

// rendered is a profile as printed, with its optional biography.
type rendered struct {
	npc.Profile `yaml:",inline"`
	Biography   string `json:"biography,omitempty" yaml:"biography,omitempty"`
}

func checkFormat(format string) error {
	if !slices.Contains(validFormats, format) {
		return fmt.Errorf("invalid format %q, valid formats: %v", format, validFormats)
	}
	return nil
}

// writeDocuments encodes one value as a single document, several as a list.
func writeDocuments[T any](w io.Writer, format string, items []T) error {
	var v any = items
	if len(items) == 1 {
		v = items[0]
	}
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return checkFormat(format)
	}
}
