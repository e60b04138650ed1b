package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// MensajeResponse respuesta de confirmación del contrato original
// (DELETE /api/categorias/:id responde {"mensaje": "..."}).
type MensajeResponse struct {
	Mensaje string `json:"mensaje"`
}
