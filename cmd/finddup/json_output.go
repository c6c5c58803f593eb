package main

import (
	"encoding/json"
	"io"
)

// printJSON writes v to w as indented UTF-8 JSON. HTML escaping is disabled
// so file paths render verbatim.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
