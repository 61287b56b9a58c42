// Package format renders catalog values for display.
package format

import (
	"fmt"
	"math"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/drstein77/techaurex/internal/models"
)

// Stars splits a 0-5 rating into star glyph counts. Any fractional part
// shows as exactly one half star.
func Stars(rating float64) models.Stars {
	rating = math.Max(0, math.Min(5, rating))
	return models.Stars{
		Full:  int(math.Floor(rating)),
		Half:  math.Mod(rating, 1) != 0,
		Empty: 5 - int(math.Ceil(rating)),
	}
}

var (
	rupee       = currency.INR
	rupeeSymbol = fmt.Sprint(currency.NarrowSymbol(rupee))
	indian      = message.NewPrinter(language.MustParse("en-IN"))
)

// Price formats amount as Indian rupees with lakh/crore digit grouping,
// e.g. 129900 => "₹1,29,900.00".
func Price(amount float64) string {
	scale, _ := currency.Standard.Rounding(rupee)
	factor := math.Pow10(scale)
	rounded := math.Round(math.Abs(amount)*factor) / factor

	out := rupeeSymbol + indian.Sprint(number.Decimal(rounded, number.Scale(scale)))
	if amount < 0 && rounded != 0 {
		return "-" + out
	}
	return out
}
