package tree

import "fmt"

var (
	nameBases = []string{"app", "core", "utils", "hooks", "service", "api", "widget", "store", "engine", "scene"}
	nameExts  = []string{".ts", ".tsx", ".js", ".json", ".cs", ".go", ".py"}
)

// ChildName returns the placeholder file name for the idx-th child at depth.
func ChildName(idx, depth int) string {
	base := nameBases[(idx+depth)%len(nameBases)]
	ext := nameExts[(idx*3+depth)%len(nameExts)]
	return fmt.Sprintf("%s-%d%s", base, idx, ext)
}

// ChildID derives a child's id from its parent's.
func ChildID(parentID string, idx int) string {
	return fmt.Sprintf("%s-%d", parentID, idx)
}
