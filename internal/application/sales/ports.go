package sales

import (
	"context"

	"github.com/breadcraft/backoffice/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD con los
// repositorios del conciliador atados a esa tx. Garantiza que devolución y
// crédito (y los acumulados del cliente) se confirmen juntos o ninguno.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		returnRepo repository.SaleReturnRepository,
		creditRepo repository.CreditRepository,
		clientRepo repository.ClientRepository,
		historyRepo repository.ClientHistoryRepository,
	) error) error
}
