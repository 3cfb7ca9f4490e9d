package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanRepoPath(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", "/"},
		{"/", "/"},
		{"p/trunk", "/p/trunk"},
		{"/p/trunk/", "/p/trunk"},
		{"//p//trunk", "/p/trunk"},
		{"/p/./trunk/../branches", "/p/branches"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanRepoPath(tt.input))
		})
	}
}

func TestCleanSubpath(t *testing.T) {
	assert.Equal(t, "", CleanSubpath(""))
	assert.Equal(t, "", CleanSubpath("."))
	assert.Equal(t, "", CleanSubpath("/"))
	assert.Equal(t, "src/text", CleanSubpath("/src/text/"))
}

func TestJoinRepoPath(t *testing.T) {
	assert.Equal(t, "/p/trunk", JoinRepoPath("/p/trunk"))
	assert.Equal(t, "/p/trunk/src", JoinRepoPath("/p/trunk", "src"))
	assert.Equal(t, "/p/trunk/src/text", JoinRepoPath("/p/trunk", "", "src", "/text/"))
	assert.Equal(t, "/src", JoinRepoPath("/", "src"))
}

func TestJoinSubpath(t *testing.T) {
	assert.Equal(t, "src/text", JoinSubpath("src", "text"))
	assert.Equal(t, "text", JoinSubpath("", "text"))
	assert.Equal(t, "src", JoinSubpath("src", ""))
	assert.Equal(t, "", JoinSubpath("", ""))
}

func TestAncestorPaths(t *testing.T) {
	assert.Equal(t, []string{"/", "/a", "/a/b"}, AncestorPaths("/a/b/c"))
	assert.Equal(t, []string{"/"}, AncestorPaths("/a"))
	assert.Empty(t, AncestorPaths("/"))
}

func TestIsSubpath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		parent   string
		expected bool
	}{
		{"same path", "/p/trunk", "/p/trunk", true},
		{"child", "/p/trunk/src", "/p/trunk", true},
		{"root parent", "/p", "/", true},
		{"sibling with shared prefix", "/p/trunk2", "/p/trunk", false},
		{"parent is not subpath of child", "/p", "/p/trunk", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsSubpath(tt.path, tt.parent))
		})
	}
}

func TestIsRelated(t *testing.T) {
	assert.True(t, IsRelated("/p/branches/users/u1", "/p/branches/users/u1/src"))
	assert.True(t, IsRelated("/p/branches/users/u1/src", "/p/branches/users/u1"))
	assert.False(t, IsRelated("/p/branches/users/u1", "/p/branches/users/u10"))
}

func TestTailPath(t *testing.T) {
	tail, ok := TailPath("/p/trunk/src/text", "/p/trunk")
	assert.True(t, ok)
	assert.Equal(t, "src/text", tail)

	tail, ok = TailPath("/p/trunk", "/p/trunk")
	assert.True(t, ok)
	assert.Equal(t, "", tail)

	tail, ok = TailPath("/p/trunk", "/")
	assert.True(t, ok)
	assert.Equal(t, "p/trunk", tail)

	_, ok = TailPath("/p/branches", "/p/trunk")
	assert.False(t, ok)
}

func TestBaseNameAndParent(t *testing.T) {
	assert.Equal(t, "user1", BaseName("/p/branches/users/user1"))
	assert.Equal(t, "", BaseName("/"))
	assert.Equal(t, "/p/branches/users", ParentPath("/p/branches/users/user1"))
	assert.Equal(t, "/", ParentPath("/p"))
}
