package catalog

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
	ErrProductNotFound  = errors.New("product not found")
)

// Product is a single catalog item. Products are loaded once at startup and
// never mutated afterwards, so values can be shared freely across goroutines.
type Product struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	PriceText   string `yaml:"price"`
	PriceAmount int    `yaml:"-"`
	Description string `yaml:"description"`
	Volume      string `yaml:"volume"`
	ImageRef    string `yaml:"photo"`
}

// Category is a named, ordered group of products. The declared order is the
// order products appear in menus.
type Category struct {
	Name     string    `yaml:"name"`
	Products []Product `yaml:"products"`
}

// Store is the read-only catalog. It is safe for concurrent use without
// locking because nothing mutates it after Load.
type Store struct {
	categories []Category
	names      []string
	byID       map[string]Product
	categoryOf map[string]string
}

// Load parses a YAML catalog document and builds the lookup indexes.
// Product IDs must be unique across the whole catalog, not just within a
// category.
func Load(data []byte) (*Store, error) {
	var categories []Category
	if err := yaml.Unmarshal(data, &categories); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	if len(categories) == 0 {
		return nil, errors.New("catalog is empty")
	}

	s := &Store{
		categories: categories,
		names:      make([]string, 0, len(categories)),
		byID:       make(map[string]Product),
		categoryOf: make(map[string]string),
	}
	for ci, c := range categories {
		if c.Name == "" {
			return nil, fmt.Errorf("category %d has no name", ci)
		}
		s.names = append(s.names, c.Name)
		for pi, p := range c.Products {
			if p.ID == "" {
				return nil, fmt.Errorf("category %q: product %d has no id", c.Name, pi)
			}
			if _, dup := s.byID[p.ID]; dup {
				return nil, fmt.Errorf("duplicate product id %q", p.ID)
			}
			amount, err := ParsePrice(p.PriceText)
			if err != nil {
				return nil, fmt.Errorf("product %q: %w", p.ID, err)
			}
			p.PriceAmount = amount
			s.categories[ci].Products[pi] = p
			s.byID[p.ID] = p
			s.categoryOf[p.ID] = c.Name
		}
	}
	return s, nil
}

// LoadFile loads a catalog from a YAML file on disk.
func LoadFile(path string) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Load(data)
}

// Categories returns the category names in declared order.
func (s *Store) Categories() []string {
	names := make([]string, len(s.names))
	copy(names, s.names)
	return names
}

// ProductsIn returns the products of a category in declared order.
func (s *Store) ProductsIn(category string) ([]Product, error) {
	for _, c := range s.categories {
		if c.Name == category {
			products := make([]Product, len(c.Products))
			copy(products, c.Products)
			return products, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrCategoryNotFound, category)
}

// FindProduct looks a product up by id.
func (s *Store) FindProduct(id string) (Product, bool) {
	p, ok := s.byID[id]
	return p, ok
}

// CategoryOf returns the name of the category containing the given product.
// The index is precomputed at load in declared category order, so a product
// resolves to the first category that lists it.
func (s *Store) CategoryOf(id string) (string, bool) {
	name, ok := s.categoryOf[id]
	return name, ok
}
