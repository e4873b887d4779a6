package model

type ChartResponse struct {
	CatalogEntry
	Metadata *ChartMetadata `json:"metadata,omitempty"`
}

type NotesResponse struct {
	Count int    `json:"count"`
	Notes []Note `json:"notes"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
