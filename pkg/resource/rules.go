package resource

// Rules holds the exclusions applied while discovering and matching resources.
type Rules struct {
	// Sources are absolute, cleaned source paths that are never parsed.
	Sources map[string]struct{}
	// Resources are resource names never reported nor counted.
	Resources map[string]struct{}
	// Assets are asset catalog base names (without extension) skipped entirely.
	Assets map[string]struct{}
	// Kinds are the enabled resource kinds.
	Kinds map[Kind]struct{}
}

// DefaultRules returns rules without exclusions and with every kind enabled.
func DefaultRules() Rules {
	return NewRules(nil, nil, nil, AllKinds())
}

// NewRules builds rules from plain lists.
func NewRules(sources, resources, assets []string, kinds []Kind) Rules {
	rules := Rules{
		Sources:   toSet(sources),
		Resources: toSet(resources),
		Assets:    toSet(assets),
		Kinds:     make(map[Kind]struct{}, len(kinds)),
	}
	for _, k := range kinds {
		rules.Kinds[k] = struct{}{}
	}
	return rules
}

// IsSourceExcluded reports whether the absolute source path is excluded.
func (r Rules) IsSourceExcluded(path string) bool {
	_, ok := r.Sources[path]
	return ok
}

// IsResourceExcluded reports whether the resource name is excluded.
func (r Rules) IsResourceExcluded(name string) bool {
	_, ok := r.Resources[name]
	return ok
}

// IsAssetExcluded reports whether the catalog base name is excluded.
func (r Rules) IsAssetExcluded(name string) bool {
	_, ok := r.Assets[name]
	return ok
}

// IsKindEnabled reports whether the kind is enabled.
func (r Rules) IsKindEnabled(k Kind) bool {
	_, ok := r.Kinds[k]
	return ok
}

// EnabledKinds returns enabled kinds in collection order.
func (r Rules) EnabledKinds() []Kind {
	var kinds []Kind
	for _, k := range AllKinds() {
		if r.IsKindEnabled(k) {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return set
}
