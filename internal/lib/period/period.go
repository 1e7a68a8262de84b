// Package period содержит расчёт срока и полной стоимости абонемента.
package period

import (
	"time"
)

// End возвращает дату окончания абонемента: календарные месяцы от даты
// начала, а не фиксированное число дней.
func End(start time.Time, months int) time.Time {
	return start.AddDate(0, months, 0)
}

// TotalPrice возвращает полную стоимость абонемента за весь срок:
// месячная цена тарифа, умноженная на количество месяцев.
func TotalPrice(monthlyPrice float64, months int) float64 {
	return monthlyPrice * float64(months)
}
