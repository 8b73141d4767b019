package view

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"ebay_pricer/internal/domain/entity"
)

const (
	StartMessage = `👋 <b>Калькулятор цены листинга</b>

/rate - текущий курс
/calc <code>cost</code> [commission] [weight] [standard|express] [domestic|international]
/minprice <code>costs</code> <code>margin</code>`

	CalcUsage     = "❌ Использование: /calc <code>cost</code> [commission] [weight] [method] [destination]"
	MinPriceUsage = "❌ Использование: /minprice <code>costs</code> <code>margin</code>"

	RateUnavailable = "⚠️ Курс сейчас недоступен, попробуйте позже"
	InternalError   = "⚠️ Что-то пошло не так"
)

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func Rate(rate entity.ExchangeRate) string {
	return fmt.Sprintf("💱 <b>%s</b>: %s\n<i>обновлён %s</i>",
		rate.Pair(), money(rate.Rate), rate.UpdatedAt.Format("02.01.2006 15:04"))
}

func Calculation(calc entity.Calculation) string {
	in, res := calc.Input, calc.Result

	var sb strings.Builder

	sb.WriteString("🧮 <b>Расчёт цены</b>\n\n")
	fmt.Fprintf(&sb, "📦 Себестоимость: %s\n", money(in.Cost))
	fmt.Fprintf(&sb, "💱 Курс: %s\n", money(in.ExchangeRate))
	fmt.Fprintf(&sb, "🤝 Комиссия: %s%%\n\n", money(in.CommissionPercent))
	fmt.Fprintf(&sb, "🏷 <b>Цена листинга: %s</b>\n", money(res.ListingPrice))
	fmt.Fprintf(&sb, "📉 Комиссия площадки: %s%% (%s)\n", money(res.FeePercent), money(res.FeeAmount))
	fmt.Fprintf(&sb, "💰 Прибыль: %s\n", money(res.Profit))
	fmt.Fprintf(&sb, "🚚 Доставка (%s, %s): %s\n", in.ShippingMethod, in.ShippingDestination, money(res.ShippingCost))
	fmt.Fprintf(&sb, "🧾 Итого с доставкой: <b>%s</b>", money(res.TotalWithShipping))

	if res.Approximate {
		fmt.Fprintf(&sb, "\n\n⚠️ Расчёт не сошёлся за %d итераций, цена приблизительная", res.Iterations)
	}

	return sb.String()
}

func MinimumPrice(costs, margin, price float64) string {
	return fmt.Sprintf("🎯 Минимальная цена для маржи %s%% при затратах %s: <b>%s</b>",
		money(margin), money(costs), money(price))
}

func Invalid(reason string) string {
	return "❌ " + reason
}
