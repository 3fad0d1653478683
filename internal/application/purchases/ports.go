package purchases

import (
	"context"

	"github.com/breadcraft/backoffice/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza que la transición de la compra y
// las reposiciones de stock de sus líneas se confirmen juntas o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		purchaseRepo repository.PurchaseRepository,
		materialRepo repository.RawMaterialRepository,
	) error) error
}
