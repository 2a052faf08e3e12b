package report

import (
	"fmt"
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

func renderJSON(w io.Writer, r *Report) error {
	if err := json.MarshalWrite(w, r, jsontext.WithIndent("  "), json.Deterministic(true)); err != nil {
		return fmt.Errorf("生成JSON报告失败: %w", err)
	}
	// MarshalWrite does not terminate the output with a newline.
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	return nil
}
