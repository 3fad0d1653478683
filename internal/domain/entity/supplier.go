package entity

import "time"

// Supplier representa un proveedor de materias primas. TaxID (CNPJ/NIT) es
// único: dos documentos del mismo proveedor referencian el mismo agregado.
type Supplier struct {
	ID        string
	Name      string
	TaxID     string
	Address   string
	Phone     string
	Email     string
	CreatedAt time.Time
	UpdatedAt time.Time
}
