// File: pkg/scan/exclude.go
package scan

import "strings"

// ExcludeSet holds the names and suffix-wildcard patterns that are omitted
// from traversal. Rules are matched against bare entry names, never full
// paths, so a rule like "build" excludes every entry called build at any
// depth.
type ExcludeSet struct {
	literals  map[string]struct{}
	wildcards []string // suffixes stripped of their leading '*'
}

// NewExcludeSet compiles a rule list into an ExcludeSet. A rule beginning
// with '*' matches any name ending with the remaining suffix; every other
// rule matches by exact equality. No case folding, no negation.
func NewExcludeSet(rules []string) *ExcludeSet {
	es := &ExcludeSet{literals: make(map[string]struct{})}
	for _, rule := range rules {
		if rule == "" {
			continue
		}
		if strings.HasPrefix(rule, "*") {
			es.wildcards = append(es.wildcards, strings.TrimPrefix(rule, "*"))
			continue
		}
		es.literals[rule] = struct{}{}
	}
	return es
}

// Match reports whether name is excluded by the rule set.
func (es *ExcludeSet) Match(name string) bool {
	if _, ok := es.literals[name]; ok {
		return true
	}
	for _, suffix := range es.wildcards {
		if strings.HasSuffix(name, suffix) {
			return true
		}
	}
	return false
}
