package catalog

import _ "embed"

//go:embed catalog.yaml
var defaultCatalog []byte

// Default loads the catalog shipped with the binary.
func Default() (*Store, error) {
	return Load(defaultCatalog)
}
