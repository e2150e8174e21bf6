package model

// AplicacionArticulo is the fitment row fetched per article set: the
// article/application link joined with the application's full path,
// e.g. "CHEVROLET -> CORSA -> 1.4 8V". Desde/Hasta are free-form validity
// markers (years or dates, occasionally several values concatenated) — they
// are passed through, never parsed.
type AplicacionArticulo struct {
	ArtID int     `gorm:"column:art_id"`
	Path  string  `gorm:"column:path"`
	Nota  *string `gorm:"column:nota"`
	Desde *string `gorm:"column:desde"`
	Hasta *string `gorm:"column:hasta"`
}

// AplicacionConteo is an application search hit with its linked-article count.
type AplicacionConteo struct {
	AplicID   int     `gorm:"column:aplic_id"`
	Path      string  `gorm:"column:path"`
	Nota      *string `gorm:"column:nota"`
	Articulos int64   `gorm:"column:articulos"`
}
