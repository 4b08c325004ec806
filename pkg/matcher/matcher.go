// Package matcher correlates declared resources with the usages found in sources and markup.
package matcher

import (
	"regexp"

	"github.com/lerenn/sur/pkg/identifier"
	"github.com/lerenn/sur/pkg/logger"
	"github.com/lerenn/sur/pkg/resource"
	"github.com/lerenn/sur/pkg/store"
)

//go:generate mockgen -source=matcher.go -destination=mocks/matcher.gen.go -package=mocks

// Entry is a resource together with the number of usages satisfying it.
type Entry struct {
	Resource resource.Resource
	Count    int
}

// Result is the outcome of matching one target.
type Result struct {
	// Entries holds every non-excluded resource, in discovery order.
	Entries []Entry
	// Unused holds resources with no satisfying usage, in discovery order.
	Unused []resource.Resource
	// TotalSize is the on-disk size of unused resources, set when a summary is rendered.
	TotalSize int64
}

// Matcher counts the usages satisfying each resource.
type Matcher interface {
	// Match computes usage counts for the snapshot. onUnused, when not nil, is
	// called for each unused resource in discovery order while matching.
	Match(snapshot store.Snapshot, rules resource.Rules, onUnused func(resource.Resource)) *Result
}

// NewMatcherParams contains parameters for creating a new Matcher instance.
type NewMatcherParams struct {
	Logger logger.Logger
}

type realMatcher struct {
	logger logger.Logger
}

// NewMatcher creates a new Matcher instance.
func NewMatcher(params NewMatcherParams) Matcher {
	if params.Logger == nil {
		params.Logger = logger.NewNoopLogger()
	}

	return &realMatcher{
		logger: params.Logger,
	}
}

// Match computes usage counts for the snapshot.
func (m *realMatcher) Match(snapshot store.Snapshot, rules resource.Rules, onUnused func(resource.Resource)) *Result {
	indexes := m.buildIndexes(snapshot.Usages)

	result := &Result{}
	for _, res := range snapshot.Resources {
		if rules.IsResourceExcluded(res.Name) {
			continue
		}

		count := 0
		if idx, ok := indexes[res.Kind]; ok {
			count = idx.count(res.Name)
		}

		result.Entries = append(result.Entries, Entry{Resource: res, Count: count})
		if count > 0 {
			continue
		}

		result.Unused = append(result.Unused, res)
		if onUnused != nil {
			onUnused(res)
		}
	}

	return result
}

// buildIndexes groups usages by kind. Each pattern value keeps its multiplicity.
func (m *realMatcher) buildIndexes(usages []resource.Usage) map[resource.Kind]*index {
	indexes := make(map[resource.Kind]*index)
	compiled := make(map[string]*regexp.Regexp)
	invalid := make(map[string]struct{})

	for _, usage := range usages {
		idx, ok := indexes[usage.Kind]
		if !ok {
			idx = newIndex()
			indexes[usage.Kind] = idx
		}

		value := usage.Pattern.Value
		switch usage.Pattern.Type {
		case resource.PatternLiteral:
			idx.literals[value]++
		case resource.PatternLegacyIdentifier:
			idx.legacy[identifier.Unquote(value)]++
		case resource.PatternModernIdentifier:
			idx.modern[identifier.StripKindSuffix(identifier.Unquote(value))]++
		case resource.PatternRegex:
			if _, bad := invalid[value]; bad {
				continue
			}
			re, ok := compiled[value]
			if !ok {
				var err error
				re, err = regexp.Compile("^(?:" + value + ")$")
				if err != nil {
					m.logger.Logf("Ignoring invalid usage pattern %q: %v", value, err)
					invalid[value] = struct{}{}
					continue
				}
				compiled[value] = re
			}
			idx.regexes = append(idx.regexes, re)
		}
	}

	return indexes
}

// index holds the usages of one kind.
type index struct {
	literals map[string]int
	legacy   map[string]int
	modern   map[string]int
	regexes  []*regexp.Regexp
}

func newIndex() *index {
	return &index{
		literals: make(map[string]int),
		legacy:   make(map[string]int),
		modern:   make(map[string]int),
	}
}

func (idx *index) count(name string) int {
	count := idx.literals[name] + idx.legacy[identifier.Legacy(name)] + idx.modern[identifier.Modern(name)]
	for _, re := range idx.regexes {
		if re.MatchString(name) {
			count++
		}
	}
	return count
}
