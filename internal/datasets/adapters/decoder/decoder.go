package decoder

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"social-insights-service/internal/datasets/core/domain"
	"social-insights-service/internal/datasets/core/ports"
)

// Decoder reads delimited text with a header row, or a JSON array of flat objects.
type Decoder struct{}

func New() *Decoder {
	return &Decoder{}
}

var _ ports.TableDecoderPort = (*Decoder)(nil)

func (d *Decoder) Decode(format string, content []byte) (domain.Table, error) {
	switch format {
	case "csv":
		return decodeCSV(content)
	case "json":
		return decodeJSON(content)
	default:
		return domain.Table{}, fmt.Errorf("%w: %q", ports.ErrUnsupportedFormat, format)
	}
}

func decodeCSV(content []byte) (domain.Table, error) {
	content = bytes.TrimPrefix(content, []byte("\xef\xbb\xbf"))

	r := csv.NewReader(bytes.NewReader(content))
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if errors.Is(err, io.EOF) {
		return domain.Table{}, fmt.Errorf("%w: missing header row", ports.ErrMalformedTable)
	}
	if err != nil {
		return domain.Table{}, fmt.Errorf("%w: %v", ports.ErrMalformedTable, err)
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	if err := checkHeader(header); err != nil {
		return domain.Table{}, err
	}

	// header width is enforced by csv.Reader via FieldsPerRecord
	r.FieldsPerRecord = len(header)

	var rows [][]string
	for {
		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return domain.Table{}, fmt.Errorf("%w: %v", ports.ErrMalformedTable, err)
		}
		rows = append(rows, rec)
	}

	return domain.Table{Header: header, Rows: rows}, nil
}

func checkHeader(header []string) error {
	seen := make(map[string]struct{}, len(header))
	for i, h := range header {
		if h == "" {
			return fmt.Errorf("%w: empty column name at position %d", ports.ErrMalformedTable, i+1)
		}
		if _, dup := seen[h]; dup {
			return fmt.Errorf("%w: duplicate column %q", ports.ErrMalformedTable, h)
		}
		seen[h] = struct{}{}
	}
	return nil
}

// decodeJSON keeps the key order of the first object as the header.
// Later objects may omit keys (empty cell) but cannot add new ones.
func decodeJSON(content []byte) (domain.Table, error) {
	var objects []json.RawMessage
	if err := json.Unmarshal(content, &objects); err != nil {
		return domain.Table{}, fmt.Errorf("%w: expected a JSON array of objects: %v", ports.ErrMalformedTable, err)
	}
	if len(objects) == 0 {
		return domain.Table{}, fmt.Errorf("%w: empty JSON array", ports.ErrMalformedTable)
	}

	var header []string
	index := map[string]int{}
	rows := make([][]string, 0, len(objects))

	for n, raw := range objects {
		keys, values, err := flatObject(raw)
		if err != nil {
			return domain.Table{}, fmt.Errorf("%w: record %d: %v", ports.ErrMalformedTable, n+1, err)
		}

		if n == 0 {
			header = keys
			for i, k := range keys {
				index[k] = i
			}
			if err := checkHeader(header); err != nil {
				return domain.Table{}, err
			}
		}

		row := make([]string, len(header))
		for i, k := range keys {
			pos, ok := index[k]
			if !ok {
				return domain.Table{}, fmt.Errorf("%w: record %d: unknown key %q", ports.ErrMalformedTable, n+1, k)
			}
			row[pos] = values[i]
		}
		rows = append(rows, row)
	}

	return domain.Table{Header: header, Rows: rows}, nil
}

func flatObject(raw json.RawMessage) ([]string, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, errors.New("record is not an object")
	}

	var keys, values []string
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, _ := tok.(string)

		tok, err = dec.Token()
		if err != nil {
			return nil, nil, err
		}

		var value string
		switch v := tok.(type) {
		case string:
			value = v
		case json.Number:
			value = v.String()
		case bool:
			if v {
				value = "true"
			} else {
				value = "false"
			}
		case nil:
			value = ""
		default:
			return nil, nil, fmt.Errorf("key %q holds a nested value", key)
		}

		keys = append(keys, key)
		values = append(values, value)
	}

	return keys, values, nil
}
