package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados de un lote de producción.
const (
	BatchStatusInProgress = "in_progress"
	BatchStatusCompleted  = "completed"
	BatchStatusFailed     = "failed"
)

// ProductionBatch registra el consumo de materia prima de un lote de producción.
// Es un hecho histórico: inmutable una vez creado. Referencia la materia prima
// por ID sin poseerla (borrar la materia no borra su historial).
type ProductionBatch struct {
	ID               string
	ProductID        string
	RawMaterialID    string
	QuantityConsumed decimal.Decimal // siempre > 0
	Losses           decimal.Decimal // mermas declaradas, informativo
	Status           string
	ProductionDate   time.Time
	CreatedAt        time.Time
}
