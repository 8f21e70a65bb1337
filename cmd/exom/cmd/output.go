package cmd

import (
	"encoding/json"
	"fmt"
	"os"
)

// printJSON writes v as indented JSON to stdout
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

func orNone(s *string) string {
	if s == nil {
		return "None"
	}
	return *s
}
