package inventory

import (
	"context"

	"github.com/breadcraft/backoffice/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que decremento de stock, lote y
// alerta se confirmen juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		materialRepo repository.RawMaterialRepository,
		batchRepo repository.ProductionBatchRepository,
		alertRepo repository.InventoryAlertRepository,
	) error) error
}
