package domain

import (
	"math"
	"strings"
)

// defaultMinorUnitExponent applies to every currency not listed below.
const defaultMinorUnitExponent = 2

// minorUnitExponents lists ISO 4217 currencies whose minor unit is not 1/100.
var minorUnitExponents = map[string]int{
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0,
	"KMF": 0, "KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "UYI": 0,
	"VND": 0, "VUV": 0, "XAF": 0, "XOF": 0, "XPF": 0,
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
}

// MinorUnitExponent returns the number of decimal places of a currency.
func MinorUnitExponent(currency string) int {
	if exp, ok := minorUnitExponents[strings.ToUpper(currency)]; ok {
		return exp
	}
	return defaultMinorUnitExponent
}

// Charge is an amount expressed in the smallest unit of its currency.
type Charge struct {
	Amount   int64
	Currency string
}

// NewCharge converts a decimal price to a charge, rounding to the nearest
// minor unit. The currency is lower-cased as the payment endpoint expects.
func NewCharge(price Decimal, currency string) Charge {
	scale := math.Pow10(MinorUnitExponent(currency))
	return Charge{
		Amount:   int64(math.Round(price.Float64() * scale)),
		Currency: strings.ToLower(currency),
	}
}
