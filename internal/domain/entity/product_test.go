package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Tests ProductPatch
// ──────────────────────────────────────────────────────────────────────────────

func TestProductPatch_Empty(t *testing.T) {
	assert.True(t, entity.ProductPatch{}.Empty())
	assert.False(t, entity.ProductPatch{Name: strPtr("taladro")}.Empty())
	assert.False(t, entity.ProductPatch{MinStock: intPtr(3)}.Empty())
}

func TestProductPatch_Changes_SoloCamposQueCambian(t *testing.T) {
	old := &entity.Product{
		Name:     "Taladro",
		Category: "Herramientas",
		Location: "A-1",
		MinStock: 5,
	}
	patch := entity.ProductPatch{
		Name:     strPtr("Taladro percutor"),
		Category: strPtr("Herramientas"), // mismo valor, no debe aparecer
		MinStock: intPtr(10),
	}

	changes := patch.Changes(old)
	require.Len(t, changes, 2)
	assert.Equal(t, "nombre: Taladro → Taladro percutor", changes[0])
	assert.Equal(t, "stock mínimo: 5 → 10", changes[1])
}

func TestProductPatch_Changes_PatchSinEfectoEsVacio(t *testing.T) {
	old := &entity.Product{Name: "Taladro", Location: "A-1"}
	patch := entity.ProductPatch{Name: strPtr("Taladro"), Location: strPtr("A-1")}

	assert.Empty(t, patch.Changes(old), "valores iguales no generan diff")
}

func TestProductPatch_Apply_RespetaCamposAusentes(t *testing.T) {
	p := &entity.Product{
		Name:     "Taladro",
		Category: "Herramientas",
		Location: "A-1",
		Barcode:  strPtr("750123"),
		MinStock: 5,
	}
	patch := entity.ProductPatch{
		Name:     strPtr("Taladro percutor"),
		MinStock: intPtr(8),
	}
	patch.Apply(p)

	assert.Equal(t, "Taladro percutor", p.Name)
	assert.Equal(t, 8, p.MinStock)
	assert.Equal(t, "Herramientas", p.Category, "campo ausente en el patch no cambia")
	require.NotNil(t, p.Barcode)
	assert.Equal(t, "750123", *p.Barcode)
}

func TestProductPatch_Apply_BarcodeVacioQuedaNULL(t *testing.T) {
	p := &entity.Product{Barcode: strPtr("750123")}
	patch := entity.ProductPatch{Barcode: strPtr("")}
	patch.Apply(p)

	assert.Nil(t, p.Barcode, "cadena vacía limpia el código de barras")
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests Product / Direction
// ──────────────────────────────────────────────────────────────────────────────

func TestProduct_BelowMinimum(t *testing.T) {
	assert.True(t, (&entity.Product{Stock: 3, MinStock: 5}).BelowMinimum())
	assert.True(t, (&entity.Product{Stock: 5, MinStock: 5}).BelowMinimum(), "el umbral es inclusivo")
	assert.False(t, (&entity.Product{Stock: 6, MinStock: 5}).BelowMinimum())
}

func TestParseDirection(t *testing.T) {
	in, err := entity.ParseDirection("in")
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionIn, in)
	assert.Equal(t, 1, in.Sign())

	out, err := entity.ParseDirection("out")
	require.NoError(t, err)
	assert.Equal(t, entity.DirectionOut, out)
	assert.Equal(t, -1, out.Sign())

	_, err = entity.ParseDirection("sideways")
	assert.Error(t, err)
	_, err = entity.ParseDirection("")
	assert.Error(t, err)

	assert.False(t, entity.Direction("IN").Valid(), "el tipo es sensible a mayúsculas")
}
