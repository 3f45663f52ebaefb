package pathutil

import (
	"regexp"
	"strings"
)

// PathPattern maps a concrete path shape to its route template.
type PathPattern struct {
	Pattern  *regexp.Regexp
	Template string
}

// pathPatterns lists the routes carrying an id, most specific first.
var pathPatterns = []*PathPattern{
	{Pattern: regexp.MustCompile(`^/accounts/[^/]+$`), Template: "/accounts/{id}"},
	{Pattern: regexp.MustCompile(`^/accounts/[^/]+/posts$`), Template: "/accounts/{id}/posts"},
	{Pattern: regexp.MustCompile(`^/accounts/[^/]+/comments$`), Template: "/accounts/{id}/comments"},

	{Pattern: regexp.MustCompile(`^/posts/[^/]+$`), Template: "/posts/{id}"},
	{Pattern: regexp.MustCompile(`^/posts/[^/]+/author$`), Template: "/posts/{id}/author"},
	{Pattern: regexp.MustCompile(`^/posts/[^/]+/comments$`), Template: "/posts/{id}/comments"},

	{Pattern: regexp.MustCompile(`^/comments/[^/]+$`), Template: "/comments/{id}"},
	{Pattern: regexp.MustCompile(`^/comments/[^/]+/author$`), Template: "/comments/{id}/author"},
	{Pattern: regexp.MustCompile(`^/comments/[^/]+/post$`), Template: "/comments/{id}/post"},

	{Pattern: regexp.MustCompile(`^/subscriptions/posts/[^/]+/comments$`), Template: "/subscriptions/posts/{id}/comments"},
}

// NormalizePath replaces ids in a request path with the route template so
// metrics labels keep a bounded cardinality.
//
//	NormalizePath("/posts/13/comments")    // "/posts/{id}/comments"
//	NormalizePath("/accounts/1?query=x")   // "/accounts/{id}"
//	NormalizePath("/health")               // "/health"
//
// Unknown paths collapse to "other" rather than leaking into label values.
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	if _, ok := staticPaths[path]; ok {
		return path
	}
	for _, p := range pathPatterns {
		if p.Pattern.MatchString(path) {
			return p.Template
		}
	}
	return "other"
}

var staticPaths = map[string]struct{}{
	"/":                    {},
	"/accounts":            {},
	"/posts":               {},
	"/comments":            {},
	"/subscriptions/posts": {},
	"/health":              {},
	"/ready":               {},
	"/live":                {},
	"/metrics":             {},
}

// ExpectedCardinality is the number of distinct values NormalizePath can return.
func ExpectedCardinality() int {
	return len(pathPatterns) + len(staticPaths) + 1
}
