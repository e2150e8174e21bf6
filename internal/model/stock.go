package model

// Stock is an article's on-hand quantity in one warehouse.
// The API only ever reads the configured warehouse (cfg.DepositoID).
type Stock struct {
	ArtID      int `gorm:"column:art_id"`
	DepositoID int `gorm:"column:deposito_id"`
	Existencia int `gorm:"column:existencia"`
}

func (Stock) TableName() string { return "stocks" }
