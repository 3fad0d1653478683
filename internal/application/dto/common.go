package dto

// ErrorResponse cuerpo de error HTTP. Code es el código de razón de dominio;
// AggregateID identifica el agregado afectado cuando aplica.
type ErrorResponse struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	AggregateID string `json:"aggregate_id,omitempty"`
}
