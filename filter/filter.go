package filter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotArray is returned when a body to filter is not a JSON array of objects
var ErrNotArray = errors.New("response is not a JSON array of objects")

// Apply evaluates filter over each element of a JSON array body and returns
// a JSON array of the matching elements, unchanged and in order, plus the
// number of matches.
func Apply(ctx context.Context, ev Evaluator, filter CompiledFilter, body []byte) ([]byte, int, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrNotArray, err)
	}

	rows := make([]Row, len(raw))
	for i, item := range raw {
		if err := json.Unmarshal(item, &rows[i]); err != nil {
			return nil, 0, fmt.Errorf("%w: element %d: %v", ErrNotArray, i, err)
		}
	}

	idx, err := ev.Select(ctx, filter, rows)
	if err != nil {
		return nil, 0, err
	}

	var buf bytes.Buffer
	buf.WriteByte('[')
	for n, i := range idx {
		if n > 0 {
			buf.WriteByte(',')
		}
		buf.Write(raw[i])
	}
	buf.WriteByte(']')

	return buf.Bytes(), len(idx), nil
}
