package dto

import (
	"encoding/json"
	"strconv"
)

// StockKind distinguishes the four stock display states.
type StockKind int

const (
	// StockDesconocido — no stock row for the article (unknown quantity).
	StockDesconocido StockKind = iota
	// StockCero — a stock row exists with quantity zero (or less).
	StockCero
	// StockCeroConSustituto — own stock is zero/unknown but at least one
	// substitute article has positive stock.
	StockCeroConSustituto
	// StockPositivo — positive on-hand quantity.
	StockPositivo
)

// SentinelSustituto is the JSON encoding of StockCeroConSustituto.
const SentinelSustituto = "0+"

// Stock is the tri-state-plus-quantity stock value exposed to clients.
//
// JSON encoding:
//
//	desconocido            -> null
//	cero                   -> 0
//	cero con sustituto     -> "0+"
//	positivo               -> the quantity as a number
type Stock struct {
	Kind     StockKind
	Cantidad int
}

func (s Stock) MarshalJSON() ([]byte, error) {
	switch s.Kind {
	case StockCero:
		return []byte("0"), nil
	case StockCeroConSustituto:
		return json.Marshal(SentinelSustituto)
	case StockPositivo:
		return []byte(strconv.Itoa(s.Cantidad)), nil
	default:
		return []byte("null"), nil
	}
}
