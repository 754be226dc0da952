// Package valueobject contains domain value objects for the SpendWise system.
package valueobject

// PriceBand is the expected price range for a spending category, in yuan.
type PriceBand struct {
	Min float64
	Max float64
	Avg float64
}

// priceIndex maps common category names to their expected price bands.
var priceIndex = map[string]PriceBand{
	"餐饮":   {Min: 15, Max: 50, Avg: 30},
	"交通":   {Min: 5, Max: 30, Avg: 15},
	"娱乐":   {Min: 30, Max: 200, Avg: 100},
	"服饰":   {Min: 100, Max: 500, Avg: 250},
	"电子产品": {Min: 500, Max: 5000, Avg: 2000},
	"日用品":  {Min: 10, Max: 100, Avg: 50},
}

// fallbackBand covers categories absent from the price index.
var fallbackBand = PriceBand{Min: 0, Max: 1000, Avg: 100}

// PriceBandFor returns the expected price band for a category. Unknown
// categories resolve to the universal fallback band, never an error.
func PriceBandFor(category string) PriceBand {
	if band, ok := priceIndex[category]; ok {
		return band
	}
	return fallbackBand
}

// Contains reports whether an amount in yuan falls within the band.
func (b PriceBand) Contains(amountYuan float64) bool {
	return amountYuan >= b.Min && amountYuan <= b.Max
}
