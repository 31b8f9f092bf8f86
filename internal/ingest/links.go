package ingest

import (
	"path"
	"regexp"
	"strings"
)

// linkPattern matches inline markdown links and captures the target, stopping
// at whitespace so optional link titles are ignored.
var linkPattern = regexp.MustCompile(`\[[^\]]*\]\(\s*([^)\s]+)[^)]*\)`)

// extractLinks returns the root-relative targets of all local markdown links
// in the body, in document order. External URLs, anchors, and targets that
// escape the corpus root are dropped. Repeated links yield repeated targets.
func extractLinks(fromFile string, body []byte) []string {
	matches := linkPattern.FindAllSubmatch(body, -1)
	if len(matches) == 0 {
		return nil
	}

	targets := make([]string, 0, len(matches))

	for _, m := range matches {
		if resolved, ok := resolveTarget(fromFile, string(m[1])); ok {
			targets = append(targets, resolved)
		}
	}

	return targets
}

// resolveTarget normalizes a link target to a root-relative slash path.
// Targets are resolved against the linking file's directory; a leading slash
// anchors at the corpus root instead.
func resolveTarget(fromFile, target string) (string, bool) {
	if target == "" || strings.HasPrefix(target, "#") {
		return "", false
	}

	if strings.Contains(target, "://") || strings.HasPrefix(target, "mailto:") {
		return "", false
	}

	// Drop fragment and query parts.
	if idx := strings.IndexAny(target, "#?"); idx >= 0 {
		target = target[:idx]
	}

	if target == "" {
		return "", false
	}

	var resolved string
	if strings.HasPrefix(target, "/") {
		resolved = path.Clean(strings.TrimPrefix(target, "/"))
	} else {
		resolved = path.Join(path.Dir(fromFile), target)
	}

	if resolved == "." || resolved == ".." || strings.HasPrefix(resolved, "../") {
		return "", false
	}

	return resolved, true
}
