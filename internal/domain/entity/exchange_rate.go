package entity

import "time"

type ExchangeRate struct {
	Base      string    `json:"base"`
	Quote     string    `json:"quote"`
	Rate      float64   `json:"rate"` // единиц Quote за единицу Base
	UpdatedAt time.Time `json:"updated_at"`
}

func (r ExchangeRate) Pair() string {
	return r.Base + "/" + r.Quote
}
