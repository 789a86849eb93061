package domain

// FoodBundleInputs are the inputs of the food bundle conversion calculator.
type FoodBundleInputs struct {
	ConversionRate  float64 `json:"conversionRate"`  // percent of users buying food today
	AverageSpending float64 `json:"averageSpending"` // per food order
	DiscountRate    float64 `json:"discountRate"`    // bundle discount, percent
	TotalUsers      int     `json:"totalUsers"`
}

// DefaultFoodBundleInputs mirror the dashboard's initial values.
var DefaultFoodBundleInputs = FoodBundleInputs{
	ConversionRate:  30,
	AverageSpending: 10,
	DiscountRate:    15,
	TotalUsers:      10000,
}

// FoodBundleRow compares base and bundle food revenue at one adoption rate.
type FoodBundleRow struct {
	AdoptionRate      int     `json:"adoptionRate"` // percent
	BaseFoodRevenue   float64 `json:"baseFoodRevenue"`
	BundleFoodRevenue float64 `json:"bundleFoodRevenue"`
}

// Viability grades the minimum adoption rate needed to break even.
type Viability string

// Viability constants
const (
	ViabilityFavorable   Viability = "favorable"   // < 35%
	ViabilityModerate    Viability = "moderate"    // < 65%
	ViabilityUnfavorable Viability = "unfavorable" // everything else, including +Inf
)

// FoodBundleResult is the food bundle calculator output.
type FoodBundleResult struct {
	FoodCustomersPct     float64         `json:"foodCustomersPct"`
	OtherCustomersPct    float64         `json:"otherCustomersPct"`
	Rows                 []FoodBundleRow `json:"rows"`
	MinimumAdoptionRate  float64         `json:"minimumAdoptionRate"` // +Inf at 100% discount
	MinimumAdoptionGrade Viability       `json:"minimumAdoptionGrade"`
}
