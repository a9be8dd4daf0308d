package domain

import (
	"fmt"
	"strconv"
)

// Money is a currency amount carried as a fixed two-decimal string.
// Amounts stay string-formatted end to end so reports never accumulate
// floating-point drift between runs.
type Money string

// ZeroMoney is the documented default for absent or invalid amounts.
const ZeroMoney Money = "0.00"

func MoneyFromFloat(v float64) Money {
	return Money(fmt.Sprintf("%.2f", v))
}

// MoneyFromString normalizes an amount string to two decimals, falling
// back to ZeroMoney when the input is empty or non-numeric.
func MoneyFromString(s string) Money {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return ZeroMoney
	}
	return MoneyFromFloat(v)
}

func (m Money) Float64() float64 {
	v, err := strconv.ParseFloat(string(m), 64)
	if err != nil {
		return 0
	}
	return v
}

func (m Money) String() string {
	return string(m)
}
