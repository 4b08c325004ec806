package resource

// DeclarationType tells how a resource was declared.
type DeclarationType int

const (
	// DeclarationCatalog is an entry inside an asset catalog.
	DeclarationCatalog DeclarationType = iota
	// DeclarationFile is a standalone file referenced by the project.
	DeclarationFile
)

// Declaration describes where a resource is declared.
type Declaration struct {
	Type DeclarationType
	// CatalogPath is the asset catalog root. Empty for standalone files.
	CatalogPath string
}

// Resource is one declared resource. Same-named resources are distinct entries.
type Resource struct {
	Name        string
	Declaration Declaration
	Kind        Kind
	Path        string
}

// IsCatalogEntry reports whether the resource lives in an asset catalog.
func (r Resource) IsCatalogEntry() bool {
	return r.Declaration.Type == DeclarationCatalog
}
