package ledger_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria. fakeStore guarda productos e historial; fakeTxRunner toma
// un snapshot antes de cada callback y lo restaura si el callback falla, para
// emular el rollback transaccional.
// ──────────────────────────────────────────────────────────────────────────────

type fakeStore struct {
	products map[string]*entity.Product
	history  []*entity.StockMovement
}

func newFakeStore() *fakeStore {
	return &fakeStore{products: make(map[string]*entity.Product)}
}

func (s *fakeStore) snapshot() *fakeStore {
	cp := newFakeStore()
	for id, p := range s.products {
		clone := *p
		cp.products[id] = &clone
	}
	cp.history = append([]*entity.StockMovement(nil), s.history...)
	return cp
}

func (s *fakeStore) restore(snap *fakeStore) {
	s.products = snap.products
	s.history = snap.history
}

type fakeProductRepo struct{ store *fakeStore }

func (r *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.Barcode != nil {
		for _, other := range r.store.products {
			if other.Barcode != nil && *other.Barcode == *p.Barcode {
				return domain.ErrDuplicate
			}
		}
	}
	clone := *p
	r.store.products[p.ID] = &clone
	return nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, id string) (*entity.Product, error) {
	p, ok := r.store.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (r *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.store.products[p.ID]; !ok {
		return domain.ErrNotFound
	}
	clone := *p
	r.store.products[p.ID] = &clone
	return nil
}

func (r *fakeProductRepo) AdjustStock(_ context.Context, id string, delta int) (int, error) {
	p, ok := r.store.products[id]
	if !ok {
		return 0, domain.ErrNotFound
	}
	p.Stock += delta
	return p.Stock, nil
}

func (r *fakeProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.store.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.store.products, id)
	return nil
}

type fakeHistoryRepo struct {
	store     *fakeStore
	createErr error
}

func (r *fakeHistoryRepo) Create(_ context.Context, m *entity.StockMovement) error {
	if r.createErr != nil {
		return r.createErr
	}
	clone := *m
	r.store.history = append(r.store.history, &clone)
	return nil
}

func (r *fakeHistoryRepo) DeleteByProduct(_ context.Context, productID string) (int64, error) {
	var kept []*entity.StockMovement
	var deleted int64
	for _, m := range r.store.history {
		if m.ProductID == productID {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	r.store.history = kept
	return deleted, nil
}

func (r *fakeHistoryRepo) DeleteByOperator(_ context.Context, operatorID string) (int64, error) {
	var kept []*entity.StockMovement
	var deleted int64
	for _, m := range r.store.history {
		if m.OperatorID == operatorID {
			deleted++
			continue
		}
		kept = append(kept, m)
	}
	r.store.history = kept
	return deleted, nil
}

type fakeTxRunner struct {
	store       *fakeStore
	historyRepo *fakeHistoryRepo
}

func (r *fakeTxRunner) Run(_ context.Context, fn func(
	productRepo repository.ProductRepository,
	historyRepo repository.StockHistoryRepository,
) error) error {
	snap := r.store.snapshot()
	if err := fn(&fakeProductRepo{store: r.store}, r.historyRepo); err != nil {
		r.store.restore(snap)
		return err
	}
	return nil
}

type auditCall struct {
	userID  string
	action  string
	details *string
}

type fakeAuditRecorder struct {
	calls []auditCall
	err   error
}

func (a *fakeAuditRecorder) Record(_ context.Context, userID, action string, details, _ *string) (string, error) {
	if a.err != nil {
		return "", a.err
	}
	a.calls = append(a.calls, auditCall{userID: userID, action: action, details: details})
	return "audit-id", nil
}

type fixture struct {
	store *fakeStore
	audit *fakeAuditRecorder
	hist  *fakeHistoryRepo
	uc    *ledger.UseCase
}

func newFixture() *fixture {
	store := newFakeStore()
	audit := &fakeAuditRecorder{}
	hist := &fakeHistoryRepo{store: store}
	uc := ledger.NewUseCase(
		&fakeTxRunner{store: store, historyRepo: hist},
		&fakeProductRepo{store: store},
		audit,
		logger.Nop(),
	)
	return &fixture{store: store, audit: audit, hist: hist, uc: uc}
}

func (f *fixture) seedProduct(t *testing.T, name string, stock int) string {
	t.Helper()
	id, err := f.uc.CreateProduct(context.Background(), ledger.CreateProductInput{
		OperatorID: "op-1",
		Name:       name,
		Location:   "A-1",
	})
	require.NoError(t, err)
	f.store.products[id].Stock = stock
	return id
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

// ──────────────────────────────────────────────────────────────────────────────
// Tests CreateProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_AltaConStockCero(t *testing.T) {
	f := newFixture()

	id, err := f.uc.CreateProduct(context.Background(), ledger.CreateProductInput{
		OperatorID: "op-1",
		Name:       "Taladro",
		Category:   "Herramientas",
		Location:   "A-1",
		Barcode:    strPtr("750123"),
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	p := f.store.products[id]
	require.NotNil(t, p)
	assert.Equal(t, 0, p.Stock, "el stock inicial siempre es 0")
	assert.Equal(t, entity.DefaultMinStock, p.MinStock)
	assert.Empty(t, f.store.history, "el alta de catálogo no genera historial")

	require.Len(t, f.audit.calls, 1)
	assert.Equal(t, "op-1", f.audit.calls[0].userID)
	assert.Contains(t, f.audit.calls[0].action, "alta de producto")
}

func TestCreateProduct_ValidaCamposObligatorios(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.CreateProduct(ctx, ledger.CreateProductInput{OperatorID: "op-1", Location: "A-1"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin nombre")

	_, err = f.uc.CreateProduct(ctx, ledger.CreateProductInput{OperatorID: "op-1", Name: "Taladro"})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "sin ubicación")

	_, err = f.uc.CreateProduct(ctx, ledger.CreateProductInput{
		OperatorID: "op-1", Name: "Taladro", Location: "A-1", MinStock: intPtr(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "min_stock negativo")

	assert.Empty(t, f.audit.calls, "un alta rechazada no audita")
}

func TestCreateProduct_BarcodeDuplicado(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.uc.CreateProduct(ctx, ledger.CreateProductInput{
		OperatorID: "op-1", Name: "Taladro", Location: "A-1", Barcode: strPtr("750123"),
	})
	require.NoError(t, err)

	_, err = f.uc.CreateProduct(ctx, ledger.CreateProductInput{
		OperatorID: "op-1", Name: "Otro taladro", Location: "B-2", Barcode: strPtr("750123"),
	})
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests UpdateProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdateProduct_AuditaElDiff(t *testing.T) {
	f := newFixture()
	id := f.seedProduct(t, "Taladro", 10)
	f.audit.calls = nil

	err := f.uc.UpdateProduct(context.Background(), "op-1", id, entity.ProductPatch{
		Name:     strPtr("Taladro percutor"),
		MinStock: intPtr(8),
	})
	require.NoError(t, err)

	p := f.store.products[id]
	assert.Equal(t, "Taladro percutor", p.Name)
	assert.Equal(t, 8, p.MinStock)
	assert.Equal(t, 10, p.Stock, "el stock nunca cambia vía update")

	require.Len(t, f.audit.calls, 1)
	require.NotNil(t, f.audit.calls[0].details)
	assert.Contains(t, *f.audit.calls[0].details, "nombre: Taladro → Taladro percutor")
	assert.Contains(t, *f.audit.calls[0].details, "stock mínimo: 5 → 8")
}

func TestUpdateProduct_PatchSinEfectoNoAudita(t *testing.T) {
	f := newFixture()
	id := f.seedProduct(t, "Taladro", 10)
	f.audit.calls = nil

	err := f.uc.UpdateProduct(context.Background(), "op-1", id, entity.ProductPatch{
		Name: strPtr("Taladro"), // mismo valor
	})
	require.NoError(t, err)
	assert.Empty(t, f.audit.calls, "un update sin cambios reales no audita")
}

func TestUpdateProduct_PatchVacioEsInvalido(t *testing.T) {
	f := newFixture()
	id := f.seedProduct(t, "Taladro", 10)

	err := f.uc.UpdateProduct(context.Background(), "op-1", id, entity.ProductPatch{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestUpdateProduct_ProductoInexistente(t *testing.T) {
	f := newFixture()

	err := f.uc.UpdateProduct(context.Background(), "op-1", "no-existe", entity.ProductPatch{
		Name: strPtr("x"),
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests DeleteProduct
// ──────────────────────────────────────────────────────────────────────────────

func TestDeleteProduct_EliminaProductoEHistorial(t *testing.T) {
	f := newFixture()
	id := f.seedProduct(t, "Taladro", 10)

	require.NoError(t, f.uc.ApplyStockChange(context.Background(), ledger.StockChangeInput{
		ProductID: id, Amount: 5, Direction: entity.DirectionIn, OperatorID: "op-1",
	}))
	require.Len(t, f.store.history, 1)
	f.audit.calls = nil

	err := f.uc.DeleteProduct(context.Background(), "op-1", id)
	require.NoError(t, err)

	assert.NotContains(t, f.store.products, id)
	assert.Empty(t, f.store.history, "el historial del producto cae con él")
	require.Len(t, f.audit.calls, 1)
	assert.Contains(t, f.audit.calls[0].action, "baja de producto")
}

func TestDeleteProduct_Inexistente(t *testing.T) {
	f := newFixture()
	err := f.uc.DeleteProduct(context.Background(), "op-1", "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auditoría best-effort
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateProduct_FalloDeAuditoriaNoFallaLaOperacion(t *testing.T) {
	f := newFixture()
	f.audit.err = errors.New("audit log caído")

	id, err := f.uc.CreateProduct(context.Background(), ledger.CreateProductInput{
		OperatorID: "op-1", Name: "Taladro", Location: "A-1",
	})
	require.NoError(t, err, "la mutación principal sobrevive al fallo de auditoría")
	assert.Contains(t, f.store.products, id)
}
