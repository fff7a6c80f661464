package ports

// InputResolver defines the interface for resolving input paths.
//
//go:generate mockgen -destination=mocks/resolver_mock.go -package=mocks -source=resolver.go
type InputResolver interface {
	// ResolveInputs expands the given paths and glob patterns to the files they denote,
	// relative to root. Directories are expanded to the files below them.
	ResolveInputs(inputs []string, root string) ([]string, error)
}
