package fieldpath

import "strings"

// Filter projects data down to exactly the requested dot-notation paths,
// preserving nesting shape.
//
// A path whose intermediate segment is absent, nil, or not an object in the
// source is skipped silently with no partial insert. Leaf values are copied
// by reference for objects and arrays. Filter never mutates its input and
// returns an empty map when nothing matches.
func Filter(data map[string]any, paths []string) map[string]any {
	out := make(map[string]any)
	if data == nil {
		return out
	}
	for _, path := range prunePaths(paths) {
		copyPath(data, out, strings.Split(path, "."))
	}
	return out
}

// prunePaths drops paths covered by a shorter requested path. When "assignee"
// is requested, "assignee.displayName" already lives inside the copied
// subtree; descending into it would write through the shared reference and
// mutate the source.
func prunePaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		if path == "" {
			continue
		}
		covered := false
		for _, other := range paths {
			if other == "" || other == path {
				continue
			}
			if strings.HasPrefix(path, other+".") {
				covered = true
				break
			}
		}
		if !covered {
			out = append(out, path)
		}
	}
	return out
}

// copyPath walks one dot-path through src, creating matching nested maps in
// dst, and copies the leaf value when the full path resolves.
func copyPath(src, dst map[string]any, segments []string) {
	key := segments[0]
	value, ok := src[key]
	if !ok || value == nil {
		return
	}

	if len(segments) == 1 {
		dst[key] = value
		return
	}

	srcChild, ok := value.(map[string]any)
	if !ok {
		return
	}

	dstChild, ok := dst[key].(map[string]any)
	if !ok {
		dstChild = make(map[string]any)
	}
	copyPath(srcChild, dstChild, segments[1:])
	if len(dstChild) > 0 {
		dst[key] = dstChild
	}
}

// TopLevelFields derives the minimal set of top-level field names to request
// from the backend for the given paths: the first segment of every path,
// de-duplicated, in first-seen order.
func TopLevelFields(paths []string) []string {
	seen := make(map[string]struct{}, len(paths))
	out := make([]string, 0, len(paths))
	for _, path := range paths {
		first, _, _ := strings.Cut(path, ".")
		if first == "" {
			continue
		}
		if _, ok := seen[first]; ok {
			continue
		}
		seen[first] = struct{}{}
		out = append(out, first)
	}
	return out
}
