package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/PaesslerAG/jsonpath"
)

// queryJSON evaluates a jsonpath expression on a JSON document. Strings are
// returned unquoted, any other result is returned as JSON.
func queryJSON(data []byte, path string) (string, error) {
	var doc any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber() // keep the decimal digits as written
	if err := dec.Decode(&doc); err != nil {
		return "", fmt.Errorf("error decoding json: %w", err)
	}

	val, err := jsonpath.Get(path, doc)
	if err != nil {
		return "", fmt.Errorf("error evaluating %q: %w", path, err)
	}
	if s, ok := val.(string); ok {
		return s, nil
	}
	out, err := json.Marshal(val)
	if err != nil {
		return "", fmt.Errorf("error encoding the result of %q: %w", path, err)
	}
	return string(out), nil
}
