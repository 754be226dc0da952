// Package valueobject contains domain value objects for the SpendWise system.
package valueobject

// defaultLifespanMonths is used for asset categories without a known lifespan.
const defaultLifespanMonths = 36

// assetLifespans maps common consumer asset categories to their suggested
// replacement cycle, in months.
var assetLifespans = map[string]int{
	"手机":  36,
	"电脑":  54,
	"平板":  48,
	"耳机":  24,
	"手表":  60,
	"相机":  60,
	"电视":  84,
	"冰箱":  120,
	"洗衣机": 96,
	"空调":  96,
}

// DefaultLifespan returns the suggested replacement cycle for an asset
// category in months, defaulting to three years for unknown categories.
func DefaultLifespan(category string) int {
	if months, ok := assetLifespans[category]; ok {
		return months
	}
	return defaultLifespanMonths
}

// IsAssetCategory reports whether the category is a tracked durable good.
func IsAssetCategory(category string) bool {
	_, ok := assetLifespans[category]
	return ok
}
