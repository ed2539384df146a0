package utils

import "strings"

// RootPath selects every entry when used as a subtree root.
const RootPath = "/"

// InSubtree reports whether path lies in the subtree rooted at root.
//
// The test is boundary-aware: path matches when root is [RootPath], when
// path equals root, or when path continues root with a '/' separator. A
// plain textual prefix is not enough, so root "a" matches "a" and "a/b"
// but not "ab/c".
func InSubtree(path, root string) bool {
	if root == RootPath || path == root {
		return true
	}
	return strings.HasPrefix(path, root+"/")
}
