package value

import (
	"fmt"
	"time"

	"github.com/rs/xid"
)

// CalculationID идентификатор сохранённого расчёта. xid содержит время
// создания, поэтому идентификаторы сортируются по времени.
type CalculationID string

func NewCalculationID() CalculationID {
	return CalculationID(xid.New().String())
}

func ParseCalculationID(s string) (CalculationID, error) {
	if _, err := xid.FromString(s); err != nil {
		return "", fmt.Errorf("xid.FromString: %w", err)
	}

	return CalculationID(s), nil
}

func (id CalculationID) String() string {
	return string(id)
}

// CreatedAt время, зашитое в идентификатор.
func (id CalculationID) CreatedAt() time.Time {
	parsed, err := xid.FromString(string(id))
	if err != nil {
		return time.Time{}
	}

	return parsed.Time()
}
