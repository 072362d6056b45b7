// Package render writes described resources as sorted, indented JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
)

// JSON writes v to w as a two-space-indented JSON document with keys
// sorted at every level. SDK structs keep their field declaration order
// when marshaled directly, so the value is round-tripped through generic
// maps first; timestamps come out in their RFC 3339 string form either
// way.
func JSON(w io.Writer, v any) error {
	normalized, err := normalize(v)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalized); err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	return nil
}

func normalize(v any) (any, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal resource: %w", err)
	}
	var generic any
	if err := json.Unmarshal(raw, &generic); err != nil {
		return nil, fmt.Errorf("normalize resource: %w", err)
	}
	return generic, nil
}
