package entity

import (
	"fmt"
	"time"
)

// DefaultMinStock umbral de stock mínimo cuando el alta no lo especifica.
const DefaultMinStock = 5

// Product representa un artículo del catálogo con su stock actual.
// Stock nunca queda negativo; solo se modifica vía movimientos de inventario.
type Product struct {
	ID            string
	Name          string
	Category      string
	Specification string
	Supplier      string
	Location      string
	Barcode       *string // único en todo el sistema si está presente
	ImagePath     *string
	Stock         int
	MinStock      int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// BelowMinimum indica si el producto está en o por debajo de su stock mínimo.
func (p *Product) BelowMinimum() bool {
	return p.Stock <= p.MinStock
}

// ProductPatch actualización parcial de un producto: solo se aplican los
// campos presentes (no nil). Stock no es actualizable por aquí; se mueve
// únicamente con movimientos de inventario.
type ProductPatch struct {
	Name          *string
	Category      *string
	Specification *string
	Supplier      *string
	Location      *string
	Barcode       *string
	ImagePath     *string
	MinStock      *int
}

// Empty indica si el patch no trae ningún campo.
func (pt ProductPatch) Empty() bool {
	return pt.Name == nil && pt.Category == nil && pt.Specification == nil &&
		pt.Supplier == nil && pt.Location == nil && pt.Barcode == nil &&
		pt.ImagePath == nil && pt.MinStock == nil
}

// Changes calcula el detalle de cambios contra el producto previo al patch,
// una línea "campo: viejo → nuevo" por campo que realmente cambia. Se usa
// como detalle humano-legible en la entrada de auditoría.
func (pt ProductPatch) Changes(old *Product) []string {
	var changes []string
	add := func(field, oldVal, newVal string) {
		if oldVal != newVal {
			changes = append(changes, fmt.Sprintf("%s: %s → %s", field, oldVal, newVal))
		}
	}
	if pt.Name != nil {
		add("nombre", old.Name, *pt.Name)
	}
	if pt.Category != nil {
		add("categoría", old.Category, *pt.Category)
	}
	if pt.Specification != nil {
		add("especificación", old.Specification, *pt.Specification)
	}
	if pt.Supplier != nil {
		add("proveedor", old.Supplier, *pt.Supplier)
	}
	if pt.Location != nil {
		add("ubicación", old.Location, *pt.Location)
	}
	if pt.Barcode != nil {
		add("código de barras", derefOrEmpty(old.Barcode), *pt.Barcode)
	}
	if pt.ImagePath != nil {
		add("imagen", derefOrEmpty(old.ImagePath), *pt.ImagePath)
	}
	if pt.MinStock != nil && *pt.MinStock != old.MinStock {
		changes = append(changes, fmt.Sprintf("stock mínimo: %d → %d", old.MinStock, *pt.MinStock))
	}
	return changes
}

// Apply copia sobre el producto los campos presentes del patch.
// Un Barcode o ImagePath con cadena vacía los deja en NULL.
func (pt ProductPatch) Apply(p *Product) {
	if pt.Name != nil {
		p.Name = *pt.Name
	}
	if pt.Category != nil {
		p.Category = *pt.Category
	}
	if pt.Specification != nil {
		p.Specification = *pt.Specification
	}
	if pt.Supplier != nil {
		p.Supplier = *pt.Supplier
	}
	if pt.Location != nil {
		p.Location = *pt.Location
	}
	if pt.Barcode != nil {
		p.Barcode = nilIfEmpty(*pt.Barcode)
	}
	if pt.ImagePath != nil {
		p.ImagePath = nilIfEmpty(*pt.ImagePath)
	}
	if pt.MinStock != nil {
		p.MinStock = *pt.MinStock
	}
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
