package errcodes

type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

const (
	InternalServerError ErrorCode = "InternalServerError"
	TimeoutExceeded     ErrorCode = "TimeoutExceeded"
	ValidationError     ErrorCode = "ValidationError"
	NotFound            ErrorCode = "NotFound"

	// Калькулятор цены
	InvalidInput   ErrorCode = "InvalidInput"   // Стоимость или курс не положительные
	Unsolvable     ErrorCode = "Unsolvable"     // Сумма комиссий >= 100%
	NonConvergence ErrorCode = "NonConvergence" // 100 итераций без сходимости

	CalculationNotFound     ErrorCode = "CalculationNotFound"
	InvalidCalculationID    ErrorCode = "InvalidCalculationID"
	ExchangeRateUnavailable ErrorCode = "ExchangeRateUnavailable"
)
