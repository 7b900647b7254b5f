// Package catalog supplies the product references the order engine consumes.
// It is a collaborator outside the engine proper: the engine only ever sees
// the opaque name + base price pair.
package catalog

import (
	"os"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/techbuild/orderflow/internal/orders/domain"
)

// Computer is one configurable machine the shop sells.
type Computer struct {
	Type      string
	Name      string
	CPU       string
	GPU       string
	RAM       string
	Storage   string
	CaseType  string
	BasePrice decimal.Decimal
}

// Product converts the catalog entry into the reference the engine consumes.
func (c Computer) Product() domain.Product {
	return domain.Product{Name: c.Name, BasePrice: c.BasePrice}
}

// Catalog is the set of machines available for ordering, keyed by type.
type Catalog struct {
	computers map[string]Computer
}

// ErrUnknownType is returned when a requested computer type is not stocked.
var ErrUnknownType = errors.New("unknown computer type")

// Default returns the shop's standard configurations.
func Default() *Catalog {
	entries := []Computer{
		{
			Type:      "gaming",
			Name:      "Gaming Beast",
			CPU:       "Intel Core i7-12700K (12 cores @ 3.6 GHz)",
			GPU:       "NVIDIA RTX 3080 (10GB VRAM)",
			RAM:       "Corsair 32GB DDR4-3600",
			Storage:   "Samsung 980 Pro NVMe SSD 1000GB",
			CaseType:  "Mid Tower RGB",
			BasePrice: decimal.NewFromInt(1500),
		},
		{
			Type:      "workstation",
			Name:      "Professional Workstation",
			CPU:       "Intel Xeon W-3275 (28 cores @ 2.5 GHz)",
			GPU:       "NVIDIA RTX A6000 (48GB VRAM)",
			RAM:       "Kingston 128GB DDR4-3200",
			Storage:   "Samsung 980 Pro NVMe SSD 2000GB",
			CaseType:  "Full Tower",
			BasePrice: decimal.NewFromInt(3500),
		},
		{
			Type:      "budget",
			Name:      "Budget Gaming PC",
			CPU:       "AMD Ryzen 5 5600X (6 cores @ 3.7 GHz)",
			GPU:       "NVIDIA RTX 3060 (12GB VRAM)",
			RAM:       "Corsair 16GB DDR4-3200",
			Storage:   "Kingston A2000 SSD 500GB",
			CaseType:  "Mid Tower",
			BasePrice: decimal.NewFromInt(900),
		},
		{
			Type:      "office",
			Name:      "Office PC",
			CPU:       "Intel Core i3-12100 (4 cores @ 3.3 GHz)",
			GPU:       "Intel UHD Graphics (Integrated)",
			RAM:       "Crucial 8GB DDR4-2666",
			Storage:   "WD Blue SSD 256GB",
			CaseType:  "Small Form Factor",
			BasePrice: decimal.NewFromInt(500),
		},
	}

	computers := make(map[string]Computer, len(entries))
	for _, c := range entries {
		computers[c.Type] = c
	}
	return &Catalog{computers: computers}
}

// ByType looks a machine up by its catalog type (gaming, workstation, ...).
func (c *Catalog) ByType(computerType string) (Computer, error) {
	computer, ok := c.computers[computerType]
	if !ok {
		return Computer{}, errors.Wrap(ErrUnknownType, computerType)
	}
	return computer, nil
}

// Types lists the available catalog types.
func (c *Catalog) Types() []string {
	types := make([]string, 0, len(c.computers))
	for t := range c.computers {
		types = append(types, t)
	}
	return types
}

// computerYAML is the on-disk shape; base_price is a string so the decimal
// conversion stays explicit.
type computerYAML struct {
	Type      string `yaml:"type"`
	Name      string `yaml:"name"`
	CPU       string `yaml:"cpu"`
	GPU       string `yaml:"gpu"`
	RAM       string `yaml:"ram"`
	Storage   string `yaml:"storage"`
	CaseType  string `yaml:"case"`
	BasePrice string `yaml:"base_price"`
}

type catalogYAML struct {
	Computers []computerYAML `yaml:"computers"`
}

// Load reads a catalog from a YAML file, replacing the defaults entirely.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: read %q", path)
	}

	var doc catalogYAML
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.Wrapf(err, "catalog: parse %q", path)
	}
	if len(doc.Computers) == 0 {
		return nil, errors.Errorf("catalog: %q contains no computers", path)
	}

	computers := make(map[string]Computer, len(doc.Computers))
	for _, entry := range doc.Computers {
		price, err := decimal.NewFromString(entry.BasePrice)
		if err != nil {
			return nil, errors.Wrapf(err, "catalog: base_price for %q", entry.Type)
		}
		computers[entry.Type] = Computer{
			Type:      entry.Type,
			Name:      entry.Name,
			CPU:       entry.CPU,
			GPU:       entry.GPU,
			RAM:       entry.RAM,
			Storage:   entry.Storage,
			CaseType:  entry.CaseType,
			BasePrice: price,
		}
	}
	return &Catalog{computers: computers}, nil
}
