package repository

import "github.com/breadcraft/backoffice/internal/domain/entity"

// InventoryAlertRepository puerto para el log de alertas de stock bajo
// (append-only, orden de inserción, historial sin límite).
type InventoryAlertRepository interface {
	Create(alert *entity.InventoryAlert) error
	List(limit, offset int) ([]entity.InventoryAlert, error)
}
