package model

type CatalogEntry struct {
	Id       string   `json:"id"`
	Path     string   `json:"path"`
	NumNotes int64    `json:"num_notes"`
	NumLong  int64    `json:"num_long"`
	Song     SongInfo `json:"song"`
}

type Catalog struct {
	Entries   []CatalogEntry
	NumFailed int64
}
