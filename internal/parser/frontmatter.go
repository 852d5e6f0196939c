package parser

import (
	"bytes"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// splitFrontMatter separates a leading YAML front matter block, delimited
// by "---" lines, from the markdown body. The closing delimiter may also be
// "...". Without front matter meta is nil and body is src.
func splitFrontMatter(src []byte) (meta map[string]any, body []byte, err error) {
	src = bytes.TrimPrefix(src, []byte("\ufeff"))
	first, rest, ok := cutLine(src)
	if !ok || string(bytes.TrimRight(first, " \t\r")) != "---" {
		return nil, src, nil
	}

	var header []byte
	for len(rest) > 0 {
		var line []byte
		line, rest, _ = cutLine(rest)
		switch string(bytes.TrimRight(line, " \t\r")) {
		case "---", "...":
			meta, err := decodeMeta(header)
			if err != nil {
				return nil, nil, err
			}
			return meta, rest, nil
		}
		header = append(header, line...)
		header = append(header, '\n')
	}
	// Unterminated: treat the whole input as markdown.
	return nil, src, nil
}

// cutLine splits off the first line of b, without its newline. ok is false
// when b is empty.
func cutLine(b []byte) (line, rest []byte, ok bool) {
	if len(b) == 0 {
		return nil, nil, false
	}
	if i := bytes.IndexByte(b, '\n'); i >= 0 {
		return b[:i], b[i+1:], true
	}
	return b, nil, true
}

func decodeMeta(header []byte) (map[string]any, error) {
	meta := map[string]any{}
	if err := yaml.Unmarshal(header, &meta); err != nil {
		return nil, fmt.Errorf("front matter: %w", err)
	}
	for k, v := range meta {
		meta[k] = normalizeMeta(v)
	}
	return meta, nil
}

// normalizeMeta turns YAML values into JSON-encodable ones.
func normalizeMeta(v any) any {
	switch v := v.(type) {
	case map[string]any:
		for k, item := range v {
			v[k] = normalizeMeta(item)
		}
		return v
	case map[any]any:
		m := make(map[string]any, len(v))
		for k, item := range v {
			m[fmt.Sprint(k)] = normalizeMeta(item)
		}
		return m
	case []any:
		for i, item := range v {
			v[i] = normalizeMeta(item)
		}
		return v
	case time.Time:
		if v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
			return v.Format(time.DateOnly)
		}
		return v.Format(time.RFC3339)
	}
	return v
}
