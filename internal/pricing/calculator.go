package pricing

import (
	"fmt"
	"math"
	"strconv"

	"print4me/internal/domain"
)

type priceKey struct {
	mode  domain.ColorMode
	sides domain.Sides
}

// unitPrices is the per-billing-unit price in domain.Currency.
var unitPrices = map[priceKey]float64{
	{domain.ColorModeMonochrome, domain.SidesSingle}: 1.0,
	{domain.ColorModeMonochrome, domain.SidesDouble}: 1.5,
	{domain.ColorModeColor, domain.SidesSingle}:      5.0,
	{domain.ColorModeColor, domain.SidesDouble}:      7.0,
}

const defaultUnitPrice = 1.0

// UnitPrice looks up the price for a color mode and sides combination.
// Paper size has no effect on price.
func UnitPrice(mode domain.ColorMode, sides domain.Sides) float64 {
	if p, ok := unitPrices[priceKey{mode, sides}]; ok {
		return p
	}
	return defaultUnitPrice
}

// BillingUnits converts billed pages to billable units. Double-sided jobs are
// charged per physical sheet.
func BillingUnits(sides domain.Sides, pages int) int {
	if sides == domain.SidesDouble {
		return (pages + 1) / 2
	}
	return pages
}

// Quote computes the price estimate. copies comes from opts when the copies
// argument is zero.
func Quote(opts domain.PrintOptions, copies, totalPages int) domain.PriceQuote {
	if copies == 0 {
		copies = opts.Copies
	}
	unit := UnitPrice(opts.ColorMode, opts.Sides)
	units := BillingUnits(opts.Sides, totalPages)
	printing := Round2(unit * float64(copies) * float64(units))

	return domain.PriceQuote{
		UnitPrice:    unit,
		TotalPages:   totalPages,
		BillingUnits: units,
		Copies:       copies,
		PrintingCost: printing,
		DeliveryFee:  domain.DeliveryFee,
		GrandTotal:   Round2(printing + domain.DeliveryFee),
		Currency:     domain.Currency,
	}
}

// Round2 rounds to 2 decimal places, half away from zero.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Breakdown renders a one-line explanation of how q was computed.
func Breakdown(q domain.PriceQuote) string {
	unitLabel := "pages"
	if q.BillingUnits != q.TotalPages {
		unitLabel = "sheets"
	}
	return fmt.Sprintf("%s %s × %d %s × %d copies = %s %s + delivery %s %s = %s %s",
		q.Currency, FormatAmount(q.UnitPrice),
		q.BillingUnits, unitLabel, q.Copies,
		q.Currency, FormatAmount(q.PrintingCost),
		q.Currency, FormatAmount(q.DeliveryFee),
		q.Currency, FormatAmount(q.GrandTotal))
}

// FormatAmount prints an amount without trailing zeros.
func FormatAmount(v float64) string {
	return strconv.FormatFloat(Round2(v), 'f', -1, 64)
}
