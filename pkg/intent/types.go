package intent

// Category is the response category assigned to an incoming message.
type Category string

const (
	CategoryGreeting      Category = "greeting"
	CategoryHowAreYou     Category = "how_are_you"
	CategoryThanks        Category = "thanks"
	CategoryCompliment    Category = "compliment"
	CategoryTimeGreeting  Category = "time_greeting"
	CategoryAffirmative   Category = "affirmative"
	CategoryNegative      Category = "negative"
	CategoryIdentity      Category = "identity"
	CategoryIntroduction  Category = "introduction"
	CategoryCouponRequest Category = "coupon_request"
	CategoryClarification Category = "clarification"
	CategoryOffTopic      Category = "offtopic"
	CategoryGeneral       Category = "general"
)

// Categories lists every category in rule priority order, general last.
var Categories = []Category{
	CategoryGreeting,
	CategoryHowAreYou,
	CategoryThanks,
	CategoryCompliment,
	CategoryTimeGreeting,
	CategoryAffirmative,
	CategoryNegative,
	CategoryIdentity,
	CategoryIntroduction,
	CategoryCouponRequest,
	CategoryClarification,
	CategoryOffTopic,
	CategoryGeneral,
}

// Result is the outcome of classifying one message.
type Result struct {
	Category     Category `json:"category"`
	StoreID      string   `json:"store_id,omitempty"`      // coupon_request only; empty means "pick a default store"
	ExplicitCode string   `json:"explicit_code,omitempty"` // attached whatever the category
	Name         string   `json:"name,omitempty"`          // introduction only
}

// HasStore reports whether a store was extracted.
func (r Result) HasStore() bool {
	return r.StoreID != ""
}
