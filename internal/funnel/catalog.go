// Package funnel holds the offer-code catalog and the revenue
// attribution over it.
package funnel

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/admferramentastudo-hash/cobradash-app/internal/models"
)

// DefaultCatalog is the built-in funnel configuration, used when no
// catalog file is supplied.
var DefaultCatalog = []models.Funnel{
	{
		ID:   "f1",
		Name: "DESTRAVA",
		Products: []models.Product{
			{Name: "Destrava Mercado Livre", Code: "f1dwnh9i"},
			{Name: "Anúncio Magnético", Code: "va51x43o"},
			{Name: "Explosão de Vendas", Code: "ys871i4n"},
		},
	},
	{
		ID:       "f2",
		Name:     "MBA",
		Products: []models.Product{{Name: "MBA - Mercado Livre", Code: "fo18fvdu"}},
	},
	{
		ID:       "f3",
		Name:     "CÚPULA",
		Products: []models.Product{{Name: "A Cúpula", Code: "4w9aspz5"}},
	},
}

type catalogFile struct {
	Funnels []models.Funnel `yaml:"funnels"`
}

// LoadCatalog reads the funnel catalog from a YAML file, falling back
// to DefaultCatalog when path is empty. The catalog is validated
// before use; a duplicate offer code across funnels is a hard error so
// attribution tie-breaks can never occur silently.
func LoadCatalog(path string) ([]models.Funnel, error) {
	if path == "" {
		if err := ValidateCatalog(DefaultCatalog); err != nil {
			return nil, err
		}
		return DefaultCatalog, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog: %w", err)
	}
	var file catalogFile
	if err := yaml.Unmarshal(b, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog: %w", err)
	}
	if err := ValidateCatalog(file.Funnels); err != nil {
		return nil, err
	}
	return file.Funnels, nil
}

var validate = validator.New()

// ValidateCatalog checks structural integrity and the cross-funnel
// uniqueness of canonicalized offer codes.
func ValidateCatalog(funnels []models.Funnel) error {
	if len(funnels) == 0 {
		return fmt.Errorf("catalog has no funnels")
	}
	owner := make(map[string]string)
	for _, f := range funnels {
		if err := validate.Struct(f); err != nil {
			return fmt.Errorf("funnel %q: %w", f.ID, err)
		}
		for _, p := range f.Products {
			code := CleanCode(p.Code)
			if code == "" {
				return fmt.Errorf("funnel %q: product %q has an empty offer code", f.ID, p.Name)
			}
			if prev, ok := owner[code]; ok && prev != f.ID {
				return fmt.Errorf("offer code %q belongs to funnels %q and %q", p.Code, prev, f.ID)
			}
			owner[code] = f.ID
		}
	}
	return nil
}
