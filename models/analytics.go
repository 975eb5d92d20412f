package models

// Analytics is the single usage rollup document in the analytics collection.
// Category counters are incremented on every matching request; the daily
// counters are folded into Trends by the nightly scheduler job.
type Analytics struct {
	ID             string       `json:"_id" bson:"_id"`
	FamilyCount    int64        `json:"familyCount" bson:"familyCount"`
	CommuteCount   int64        `json:"commuteCount" bson:"commuteCount"`
	TrekkingCount  int64        `json:"trekkingCount" bson:"trekkingCount"`
	LuxuryCount    int64        `json:"luxuryCount" bson:"luxuryCount"`
	BudgetCount    int64        `json:"budgetCount" bson:"budgetCount"`
	SafetyCount    int64        `json:"safetyCount" bson:"safetyCount"`
	TotalVisits    int64        `json:"totalVisits" bson:"totalVisits"`
	TotalRevenue   int64        `json:"totalRevenue" bson:"totalRevenue"`
	ConversionRate float64      `json:"conversionRate" bson:"conversionRate"`
	PendingDeals   int64        `json:"pendingDeals" bson:"pendingDeals"`
	DailyInquiries int64        `json:"dailyInquiries" bson:"dailyInquiries"`
	DailyRevenue   int64        `json:"dailyRevenue" bson:"dailyRevenue"`
	Trends         []TrendPoint `json:"trends" bson:"trends"`
}

// TrendPoint is one daily bucket in the analytics trend window
type TrendPoint struct {
	Date      string `json:"date" bson:"date"`
	Inquiries int64  `json:"inquiries" bson:"inquiries"`
	Revenue   int64  `json:"revenue" bson:"revenue"`
}

// AnalyticsCounterField maps an intent category to its counter field in the
// analytics document. Returns "" for unknown categories.
func AnalyticsCounterField(category string) string {
	switch category {
	case CategoryFamily:
		return "familyCount"
	case CategoryCommute:
		return "commuteCount"
	case CategoryTrekking:
		return "trekkingCount"
	case CategoryLuxury:
		return "luxuryCount"
	case CategoryBudget:
		return "budgetCount"
	case CategorySafety:
		return "safetyCount"
	}
	return ""
}
