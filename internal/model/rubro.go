package model

// RubroConteo is one flattened category tree node ("rubro"/"familia") with its
// derived article count. PadreID is nil for roots; Path is the pre-computed
// full hierarchy string.
type RubroConteo struct {
	RubroID   int     `gorm:"column:rubro_id"`
	PadreID   *int    `gorm:"column:padre_id"`
	Nombre    string  `gorm:"column:nombre"`
	Path      string  `gorm:"column:path"`
	Nota      *string `gorm:"column:nota"`
	Articulos int64   `gorm:"column:articulos"`
}
