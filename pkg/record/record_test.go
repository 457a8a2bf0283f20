package record

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type widget struct {
	ID    string
	Size  int
	Color string
}

func (w *widget) GetID() string { return w.ID }

var widgetCatalog = Catalog[*widget]{
	Name: "widget",
	New:  func() *widget { return &widget{} },
	Fields: []Field[*widget]{
		{
			Name: "id", Kind: KindString,
			Get: func(w *widget) any { return w.ID },
			Set: func(w *widget, v any) error { w.ID = v.(string); return nil },
		},
		{
			Name: "size", Kind: KindInt,
			Get: func(w *widget) any { return w.Size },
			Set: func(w *widget, v any) error { w.Size = v.(int); return nil },
		},
		{
			Name: "color", Kind: KindEnum, Enum: []string{"RED", "BLUE"},
			Get: func(w *widget) any { return w.Color },
			Set: func(w *widget, v any) error { w.Color = v.(string); return nil },
		},
	},
}

func TestValid(t *testing.T) {
	assert.True(t, Valid(&widget{ID: "W001"}))
	assert.False(t, Valid(&widget{}))
}

func TestCatalogField(t *testing.T) {
	f, ok := widgetCatalog.Field("size")
	require.True(t, ok)
	assert.Equal(t, KindInt, f.Kind)

	_, ok = widgetCatalog.Field("weight")
	assert.False(t, ok)
}

func TestCatalogHeader(t *testing.T) {
	assert.Equal(t, []string{"id", "size", "color"}, widgetCatalog.Header())
}

func TestCanonicalEnum(t *testing.T) {
	f, ok := widgetCatalog.Field("color")
	require.True(t, ok)

	for _, raw := range []string{"RED", "red", "Red", " red "} {
		got, err := f.CanonicalEnum(raw)
		require.NoError(t, err, "raw %q", raw)
		assert.Equal(t, "RED", got)
	}

	_, err := f.CanonicalEnum("green")
	assert.Error(t, err)
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "int", KindInt.String())
	assert.Equal(t, "datetime", KindDateTime.String())
	assert.Equal(t, "unknown", Kind(99).String())
}
