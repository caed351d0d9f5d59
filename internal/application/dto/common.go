package dto

// ErrorResponse cuerpo de error HTTP: {"error": "<mensaje>"}.
type ErrorResponse struct {
	Error string `json:"error"`
}

// OkResponse acuse simple: {"ok": true}.
type OkResponse struct {
	Ok bool `json:"ok"`
}
