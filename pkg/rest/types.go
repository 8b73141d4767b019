// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "time"

// QuoteRequest Параметры расчёта цены
type QuoteRequest struct {
	// Cost Себестоимость в домашней валюте
	Cost float64 `json:"cost" validate:"gt=0"`

	// ExchangeRate Курс; если не задан, берётся текущий
	ExchangeRate *float64 `json:"exchangeRate,omitempty" validate:"omitempty,gt=0"`

	// CommissionPercent Комиссия посредника; если не задана, берётся из настроек
	CommissionPercent *float64 `json:"commissionPercent,omitempty" validate:"omitempty,gte=0,lt=100"`

	ShippingWeight      float64 `json:"shippingWeight" validate:"gte=0"`
	ShippingMethod      string  `json:"shippingMethod,omitempty" validate:"omitempty,oneof=standard express"`
	ShippingDestination string  `json:"shippingDestination,omitempty" validate:"omitempty,oneof=domestic international"`
}

// FeeSchedule Комиссии площадки, применённые в расчёте
type FeeSchedule struct {
	TierThreshold   float64 `json:"tierThreshold"`
	LowTierPercent  float64 `json:"lowTierPercent"`
	HighTierPercent float64 `json:"highTierPercent"`
	PaypalPercent   float64 `json:"paypalPercent"`
}

// CalculationInput Нормализованные входные данные
type CalculationInput struct {
	Cost                float64     `json:"cost"`
	ExchangeRate        float64     `json:"exchangeRate"`
	CommissionPercent   float64     `json:"commissionPercent"`
	ShippingWeight      float64     `json:"shippingWeight"`
	ShippingMethod      string      `json:"shippingMethod"`
	ShippingDestination string      `json:"shippingDestination"`
	Fees                FeeSchedule `json:"fees"`
}

// CalculationResult Денежные поля округлены до двух знаков
type CalculationResult struct {
	ListingPrice      float64 `json:"listingPrice"`
	FeePercent        float64 `json:"feePercent"`
	FeeAmount         float64 `json:"feeAmount"`
	Profit            float64 `json:"profit"`
	ShippingCost      float64 `json:"shippingCost"`
	TotalWithShipping float64 `json:"totalWithShipping"`
	Iterations        int     `json:"iterations"`

	// Approximate Расчёт не сошёлся за отведённое число итераций
	Approximate bool `json:"approximate"`
}

type Calculation struct {
	// ID Пустой для расчётов без сохранения
	ID        string            `json:"id,omitempty"`
	Input     CalculationInput  `json:"input"`
	Result    CalculationResult `json:"result"`
	CreatedAt time.Time         `json:"createdAt"`
}

type CalculationList struct {
	Items  []Calculation `json:"items"`
	Limit  int           `json:"limit"`
	Offset int           `json:"offset"`
}

type MinimumPriceRequest struct {
	TotalCosts          float64 `json:"totalCosts" validate:"gt=0"`
	TargetMarginPercent float64 `json:"targetMarginPercent" validate:"gte=0"`
}

type MinimumPriceResponse struct {
	MinimumPrice float64 `json:"minimumPrice"`
}

type ExchangeRate struct {
	Base      string    `json:"base"`
	Quote     string    `json:"quote"`
	Rate      float64   `json:"rate"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Error Модель ошибок
type Error struct {
	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для обращения в поддержку
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string
