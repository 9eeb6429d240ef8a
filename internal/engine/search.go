package engine

import (
	"strings"

	"prostor/internal/domain"
)

// FilterProjects keeps the projects matching every whitespace-separated
// token of the query. A blank query returns the input unchanged. Tokens
// support the prefixes id:, tag:/#, assignee:/@, stage: and client:;
// anything else matches id, name, client, tags or assignees. All matching
// is case-insensitive substring.
func (e Engine) FilterProjects(projects []domain.Project, query string) []domain.Project {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return projects
	}
	var out []domain.Project
	for _, p := range projects {
		if matchesAll(p, tokens) {
			out = append(out, p)
		}
	}
	return out
}

func matchesAll(p domain.Project, tokens []string) bool {
	for _, tok := range tokens {
		if !matchesToken(p, tok) {
			return false
		}
	}
	return true
}

func matchesToken(p domain.Project, tok string) bool {
	switch {
	case strings.HasPrefix(tok, "id:"):
		return containsFold(p.ID, tok[len("id:"):])
	case strings.HasPrefix(tok, "#"):
		return anyContainsFold(p.Tags, tok[1:])
	case strings.HasPrefix(tok, "tag:"):
		return anyContainsFold(p.Tags, tok[len("tag:"):])
	case strings.HasPrefix(tok, "@"):
		return anyContainsFold(p.Assignees, tok[1:])
	case strings.HasPrefix(tok, "assignee:"):
		return anyContainsFold(p.Assignees, tok[len("assignee:"):])
	case strings.HasPrefix(tok, "stage:"):
		return containsFold(string(p.Stage), tok[len("stage:"):])
	case strings.HasPrefix(tok, "client:"):
		return containsFold(p.Client, tok[len("client:"):])
	}
	return containsFold(p.ID, tok) ||
		containsFold(p.Name, tok) ||
		containsFold(p.Client, tok) ||
		anyContainsFold(p.Tags, tok) ||
		anyContainsFold(p.Assignees, tok)
}

// containsFold expects needle already lowercased.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), needle)
}

func anyContainsFold(values []string, needle string) bool {
	for _, v := range values {
		if containsFold(v, needle) {
			return true
		}
	}
	return false
}
