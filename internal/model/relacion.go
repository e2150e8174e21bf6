package model

// Relation kinds form a closed enumeration. Rows with any other kind are
// ignored during assembly.
const (
	RelacionSustituto      = 1
	RelacionComplementario = 2
)

// Relacion is a directed reference from one article to another
// (complementary part or substitute part).
type Relacion struct {
	ArtID    int `gorm:"column:art_id"`
	ArtRelID int `gorm:"column:art_rel_id"`
	TipoID   int `gorm:"column:tipo_id"`
}

func (Relacion) TableName() string { return "articulo_relaciones" }
