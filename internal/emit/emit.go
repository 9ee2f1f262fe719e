// Package emit writes the final result document. It is the only place that
// touches stdout; everything else logs to stderr.
package emit

import (
	"encoding/json"
	"fmt"
	"io"
)

func JSON(w io.Writer, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("write result: %w", err)
	}

	return nil
}
