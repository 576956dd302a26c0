package dto

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CreateClientRequest struct {
	Code *string `json:"code"`
	Name string  `json:"name" validate:"required,min=1,max=120"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type ClientResponse struct {
	ID   string  `json:"id"`
	Code *string `json:"code"`
	Name string  `json:"name"`
}
