package ledger

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/pkg/logger"
)

// UseCase operaciones de escritura del ledger de inventario: alta, edición y
// baja de productos, y aplicación de deltas de stock. Cada mutación exitosa
// emite exactamente una entrada de auditoría.
type UseCase struct {
	txRunner    TxRunner
	productRepo repository.ProductRepository
	audit       AuditRecorder
	log         *logger.Logger
}

// NewUseCase construye el caso de uso del ledger.
func NewUseCase(txRunner TxRunner, productRepo repository.ProductRepository, audit AuditRecorder, log *logger.Logger) *UseCase {
	return &UseCase{txRunner: txRunner, productRepo: productRepo, audit: audit, log: log}
}

// CreateProductInput atributos para el alta de un producto.
// Stock inicia en 0; el movimiento inicial se registra aparte como entrada.
type CreateProductInput struct {
	OperatorID    string
	Name          string
	Category      string
	Specification string
	Supplier      string
	Location      string
	Barcode       *string
	ImagePath     *string
	MinStock      *int
}

// CreateProduct da de alta un producto. Nombre y ubicación son obligatorios;
// el código de barras, si viene, debe ser único en todo el sistema
// (domain.ErrDuplicate en colisión). No genera historial: el historial
// registra movimiento de stock, no creación de catálogo.
func (uc *UseCase) CreateProduct(ctx context.Context, in CreateProductInput) (string, error) {
	if in.Name == "" || in.Location == "" || in.OperatorID == "" {
		return "", domain.ErrInvalidInput
	}
	minStock := entity.DefaultMinStock
	if in.MinStock != nil {
		if *in.MinStock < 0 {
			return "", domain.ErrInvalidInput
		}
		minStock = *in.MinStock
	}
	if in.Barcode != nil && *in.Barcode == "" {
		in.Barcode = nil
	}
	now := time.Now()
	product := &entity.Product{
		ID:            uuid.New().String(),
		Name:          in.Name,
		Category:      in.Category,
		Specification: in.Specification,
		Supplier:      in.Supplier,
		Location:      in.Location,
		Barcode:       in.Barcode,
		ImagePath:     in.ImagePath,
		Stock:         0,
		MinStock:      minStock,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := uc.productRepo.Create(ctx, product); err != nil {
		return "", err
	}
	details := fmt.Sprintf("nombre: %s, categoría: %s, ubicación: %s", product.Name, product.Category, product.Location)
	uc.recordAudit(ctx, in.OperatorID, "alta de producto "+product.ID, &details)
	return product.ID, nil
}

// UpdateProduct aplica un patch sobre el producto: solo cambian los campos
// presentes. El diff viejo/nuevo se calcula sobre la fila leída dentro de la
// misma transacción que escribe, y alimenta el detalle de auditoría.
func (uc *UseCase) UpdateProduct(ctx context.Context, operatorID, productID string, patch entity.ProductPatch) error {
	if operatorID == "" || productID == "" || patch.Empty() {
		return domain.ErrInvalidInput
	}
	if patch.MinStock != nil && *patch.MinStock < 0 {
		return domain.ErrInvalidInput
	}
	var changes []string
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, _ repository.StockHistoryRepository) error {
		product, err := productRepo.GetByID(ctx, productID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}
		changes = patch.Changes(product)
		if len(changes) == 0 {
			return nil
		}
		patch.Apply(product)
		product.UpdatedAt = time.Now()
		return productRepo.Update(ctx, product)
	})
	if err != nil {
		return err
	}
	if len(changes) > 0 {
		details := strings.Join(changes, " | ")
		uc.recordAudit(ctx, operatorID, "actualización de producto "+productID, &details)
	}
	return nil
}

// DeleteProduct elimina el producto y su historial en una sola transacción:
// primero las filas dependientes, después la fila padre. Si cualquiera de los
// dos pasos falla no queda borrado parcial observable.
func (uc *UseCase) DeleteProduct(ctx context.Context, operatorID, productID string) error {
	if operatorID == "" || productID == "" {
		return domain.ErrInvalidInput
	}
	err := uc.txRunner.Run(ctx, func(productRepo repository.ProductRepository, historyRepo repository.StockHistoryRepository) error {
		if _, err := historyRepo.DeleteByProduct(ctx, productID); err != nil {
			return err
		}
		return productRepo.Delete(ctx, productID)
	})
	if err != nil {
		return err
	}
	uc.recordAudit(ctx, operatorID, "baja de producto "+productID, nil)
	return nil
}

// recordAudit escribe la entrada de auditoría best-effort: un fallo se
// loguea con detalle y la operación principal sigue siendo exitosa.
func (uc *UseCase) recordAudit(ctx context.Context, userID, action string, details *string) {
	if _, err := uc.audit.Record(ctx, userID, action, details, nil); err != nil {
		uc.log.Warn().Err(err).Str("action", action).Msg("registro de auditoría falló")
	}
}
