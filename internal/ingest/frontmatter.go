package ingest

import (
	"bytes"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

var frontmatterDelim = []byte("---")

// splitFrontmatter separates a leading YAML frontmatter block from the body.
// A block is delimited by "---" lines at the very top of the file. Files
// without frontmatter return a nil map and the full content as body.
func splitFrontmatter(content []byte) (map[string]any, []byte, error) {
	trimmed := bytes.TrimPrefix(content, []byte("\ufeff")) // strip UTF-8 BOM

	if !bytes.HasPrefix(trimmed, frontmatterDelim) {
		return nil, content, nil
	}

	rest := trimmed[len(frontmatterDelim):]
	if len(rest) > 0 && rest[0] == '\r' {
		rest = rest[1:]
	}

	if len(rest) == 0 || rest[0] != '\n' {
		return nil, content, nil
	}

	rest = rest[1:]

	end := bytes.Index(rest, []byte("\n---"))
	if end < 0 {
		return nil, content, nil
	}

	block := rest[:end]

	body := rest[end+len("\n---"):]
	if idx := bytes.IndexByte(body, '\n'); idx >= 0 {
		body = body[idx+1:]
	} else {
		body = nil
	}

	meta := map[string]any{}
	if err := yaml.Unmarshal(block, &meta); err != nil {
		return nil, content, fmt.Errorf("parsing frontmatter: %w", err)
	}

	return meta, body, nil
}

// stringList extracts a list of strings from a frontmatter value. Scalar
// strings are treated as a single-element list.
func stringList(meta map[string]any, key string) []string {
	v, ok := meta[key]
	if !ok {
		return nil
	}

	switch val := v.(type) {
	case string:
		if val == "" {
			return nil
		}

		return []string{val}
	case []any:
		out := make([]string, 0, len(val))

		for _, item := range val {
			if s, ok := item.(string); ok && s != "" {
				out = append(out, s)
			}
		}

		return out
	default:
		return nil
	}
}

// documentTitle picks a title: frontmatter "title", then the first level-one
// heading, then the file name without extension.
func documentTitle(meta map[string]any, body []byte, filePath string) string {
	if t, ok := meta["title"].(string); ok && t != "" {
		return t
	}

	for _, line := range strings.Split(string(body), "\n") {
		line = strings.TrimSpace(line)
		if after, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(after)
		}
	}

	base := filePath
	if idx := strings.LastIndexByte(base, '/'); idx >= 0 {
		base = base[idx+1:]
	}

	if idx := strings.LastIndexByte(base, '.'); idx > 0 {
		base = base[:idx]
	}

	return base
}
