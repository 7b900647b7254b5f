package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/techbuild/orderflow/internal/catalog"
)

func TestDefaultCatalog(t *testing.T) {
	cat := catalog.Default()
	assert.ElementsMatch(t, []string{"gaming", "workstation", "budget", "office"}, cat.Types())

	cases := map[string]struct {
		name  string
		price int64
	}{
		"gaming":      {name: "Gaming Beast", price: 1500},
		"workstation": {name: "Professional Workstation", price: 3500},
		"budget":      {name: "Budget Gaming PC", price: 900},
		"office":      {name: "Office PC", price: 500},
	}

	for typ, want := range cases {
		computer, err := cat.ByType(typ)
		require.NoErrorf(t, err, "type %s", typ)
		assert.Equal(t, want.name, computer.Name)
		assert.True(t, computer.BasePrice.Equal(decimal.NewFromInt(want.price)))

		product := computer.Product()
		assert.Equal(t, want.name, product.Name)
		assert.True(t, product.BasePrice.Equal(computer.BasePrice))
	}
}

func TestUnknownType(t *testing.T) {
	_, err := catalog.Default().ByType("mainframe")
	assert.ErrorIs(t, err, catalog.ErrUnknownType)
}

func TestLoadFromYAML(t *testing.T) {
	doc := `
computers:
  - type: gaming
    name: Custom Rig
    cpu: AMD Ryzen 9 7950X
    gpu: NVIDIA RTX 4090
    ram: 64GB DDR5
    storage: 2TB NVMe
    case: Full Tower
    base_price: "2499.99"
`
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	cat, err := catalog.Load(path)
	require.NoError(t, err)

	computer, err := cat.ByType("gaming")
	require.NoError(t, err)
	assert.Equal(t, "Custom Rig", computer.Name)
	assert.Equal(t, "2499.99", computer.BasePrice.StringFixed(2))
}

func TestLoadRejectsBadInput(t *testing.T) {
	dir := t.TempDir()

	_, err := catalog.Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	empty := filepath.Join(dir, "empty.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("computers: []\n"), 0o644))
	_, err = catalog.Load(empty)
	assert.Error(t, err)

	badPrice := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(badPrice, []byte(`
computers:
  - type: gaming
    name: Rig
    base_price: "lots"
`), 0o644))
	_, err = catalog.Load(badPrice)
	assert.Error(t, err)
}
