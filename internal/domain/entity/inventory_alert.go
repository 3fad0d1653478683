package entity

import "time"

// InventoryAlert es una alerta de stock bajo, append-only. Se emite una por
// cada lote que deja el stock bajo el mínimo; no se deduplican alertas
// repetidas para la misma materia (política al-menos-una-vez).
type InventoryAlert struct {
	ID         string
	MaterialID string
	Message    string
	CreatedAt  time.Time
}
