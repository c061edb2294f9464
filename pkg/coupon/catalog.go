package coupon

import "strings"

// Store aliases, in lookup order. First store whose alias is a substring wins.
type StoreVariant struct {
	ID      string
	Aliases []string
}

const DefaultPattern = "default"

var StoreVariants = []StoreVariant{
	{ID: "amazon", Aliases: []string{"amazon", "amzn", "amazon india", "amazon.in"}},
	{ID: "flipkart", Aliases: []string{"flipkart", "flip kart", "flip-kart"}},
	{ID: "myntra", Aliases: []string{"myntra", "myntra.com"}},
	{ID: "zomato", Aliases: []string{"zomato", "zomato.com"}},
	{ID: "swiggy", Aliases: []string{"swiggy", "swiggy.com"}},
	{ID: "ajio", Aliases: []string{"ajio", "ajio.com"}},
	{ID: "meesho", Aliases: []string{"meesho", "meesho.com"}},
	{ID: "nykaa", Aliases: []string{"nykaa", "nykaa.com"}},
	{ID: "bigbasket", Aliases: []string{"bigbasket", "big basket", "big-basket"}},
	{ID: "grofers", Aliases: []string{"grofers", "grofers.com"}},
	{ID: "blinkit", Aliases: []string{"blinkit", "blinkit.com"}},
	{ID: "dunzo", Aliases: []string{"dunzo", "dunzo.com"}},
	{ID: "puma", Aliases: []string{"puma", "puma shoes", "puma india"}},
	{ID: "nike", Aliases: []string{"nike", "nike shoes", "nike india"}},
	{ID: "adidas", Aliases: []string{"adidas", "adidas shoes", "adidas india"}},
	{ID: "reebok", Aliases: []string{"reebok", "reebok shoes", "reebok india"}},
	{ID: "food", Aliases: []string{"food", "food delivery", "restaurant", "dining"}},
	{ID: "fashion", Aliases: []string{"fashion", "clothing", "apparel", "style"}},
	{ID: "electronics", Aliases: []string{"electronics", "gadgets", "tech", "devices"}},
	{ID: "baby", Aliases: []string{"baby", "baby products", "kids", "children", "infant", "toddler"}},
}

// FootwearBrands are the sports brands used for generic footwear/apparel requests.
var FootwearBrands = []string{"puma", "nike", "adidas", "reebok"}

var CodePatterns = map[string][]string{
	"amazon":      {"SAVE{num}", "DEAL{num}", "OFF{num}", "FLASH{num}", "PRIME{num}"},
	"flipkart":    {"FLIP{num}", "BIG{num}", "SAVE{num}", "DEAL{num}", "OFF{num}"},
	"myntra":      {"MYNTRA{num}", "FASHION{num}", "STYLE{num}", "TREND{num}"},
	"zomato":      {"ZO{num}", "FOOD{num}", "EAT{num}", "SAVE{num}", "DEAL{num}"},
	"swiggy":      {"SWIGGY{num}", "FOOD{num}", "EAT{num}", "SAVE{num}", "DEAL{num}"},
	"ajio":        {"AJIO{num}", "FASHION{num}", "STYLE{num}", "TREND{num}"},
	"meesho":      {"MEE{num}", "SHOP{num}", "SAVE{num}", "DEAL{num}"},
	"nykaa":       {"NYK{num}", "BEAUTY{num}", "GLAM{num}", "STYLE{num}"},
	"bigbasket":   {"BB{num}", "GROCERY{num}", "SAVE{num}", "DEAL{num}"},
	"grofers":     {"GROF{num}", "GROCERY{num}", "SAVE{num}", "DEAL{num}"},
	"blinkit":     {"BLINK{num}", "GROCERY{num}", "SAVE{num}", "DEAL{num}"},
	"dunzo":       {"DUNZO{num}", "DELIVERY{num}", "SAVE{num}", "DEAL{num}"},
	"puma":        {"PUMA{num}", "SPORT{num}", "RUN{num}", "STYLE{num}", "FIT{num}"},
	"nike":        {"NIKE{num}", "JUST{num}", "SPORT{num}", "RUN{num}"},
	"adidas":      {"ADI{num}", "SPORT{num}", "RUN{num}", "STYLE{num}"},
	"reebok":      {"RBK{num}", "SPORT{num}", "FIT{num}", "STYLE{num}"},
	"food":        {"FOOD{num}", "EAT{num}", "SAVE{num}", "DEAL{num}", "TASTE{num}"},
	"fashion":     {"FASHION{num}", "STYLE{num}", "TREND{num}", "LOOK{num}", "SHOP{num}"},
	"electronics": {"TECH{num}", "GADGET{num}", "DEAL{num}", "SAVE{num}", "OFF{num}"},
	"baby":        {"BABY{num}", "KIDS{num}", "SAVE{num}", "DEAL{num}", "HAPPY{num}"},
	DefaultPattern: {"SAVE{num}", "DEAL{num}", "OFF{num}", "FLASH{num}", "BEST{num}", "HAPPY{num}", "SPECIAL{num}"},
}

var GenericDiscounts = []string{
	"10% off", "15% off", "20% off", "25% off", "30% off",
	"40% off", "50% off", "Flat ₹149 off", "Flat ₹249 off", "Flat ₹499 off",
	"Flat ₹999 off", "Flat ₹1499 off", "Buy 1 Get 1 Free", "Extra 10% off on ₹1999",
	"Flat ₹350 off on ₹2000+", "Flat ₹750 off on ₹3500+", "Extra 15% off up to ₹2000",
	"Flat ₹500 off on ₹2500+", "Extra 20% off on footwear", "Flat ₹1000 off on ₹4999+",
}

var CategoryDiscounts = map[string][]string{
	"puma": {"20% off on all shoes", "Flat ₹750 off on ₹3500+", "Buy 1 Get 1 Free on selected shoes",
		"Flat ₹1500 off on running shoes", "40% off on selected styles", "Extra 15% off on ₹4999+"},
	"nike": {"25% off on all shoes", "Flat ₹1000 off on ₹5000+", "Extra 10% off on Air Jordan",
		"Flat ₹2000 off on premium collection", "30% off on sports apparel"},
	"adidas": {"30% off on all Originals", "Flat ₹1200 off on Ultra Boost", "Buy 1 Get 1 on selected items",
		"40% off on running shoes", "Extra 15% off on ₹3999+"},
	"reebok": {"35% off on training shoes", "Flat ₹899 off on ₹2999+", "50% off on selected styles",
		"Buy 2 Get 1 Free on apparel", "Extra 10% off for first-time users"},
	"electronics": {"Flat ₹2000 off on laptops", "Up to 40% off on smartphones", "Extra 10% off with bank cards",
		"Flat ₹5000 off on purchases above ₹40000", "No-cost EMI on ₹15000+"},
	"fashion": {"Buy 2 Get 1 Free", "Flat 40% off on ethnic wear", "Extra 15% off on ₹2499+",
		"Flat ₹750 off on ₹3000+", "Season sale: Up to 70% off"},
	"food": {"Flat ₹150 off on orders above ₹499", "Buy 1 Get 1 on main course", "60% off up to ₹120",
		"Free delivery on orders above ₹199", "₹100 off on first 3 orders"},
}

var TipFallbacks = map[string]string{
	"amazon":      "Check for 'Lightning Deals' - they're like regular deals but with a fancy name to make you feel special!",
	"flipkart":    "Compare prices across platforms - because your wallet deserves the best, even if it means being a little disloyal!",
	"myntra":      "Wait for end-of-season sales - your patience will be rewarded with discounts that make your bank account smile!",
	"zomato":      "Order during off-peak hours - because saving money is worth eating dinner at 4 PM!",
	"swiggy":      "Check for restaurant-specific offers - sometimes the best deals are hiding in plain sight!",
	"ajio":        "Sign up for their newsletter - yes, more emails, but also more savings!",
	"meesho":      "Look for combo deals - because buying more to save more is totally logical!",
	"nykaa":       "Wait for their Pink Friday sale - it's like Black Friday but with a prettier name!",
	"bigbasket":   "Order in bulk during sales - your pantry will thank you, and so will your wallet!",
	"grofers":     "Check for first-order discounts - because being a new customer has its perks!",
	"blinkit":     "Look for time-specific offers - because shopping at odd hours is the new normal!",
	"dunzo":       "Compare delivery fees - sometimes the shortest route isn't the cheapest!",
	"puma":        "Check outlet stores online - because paying full price is so last season!",
	"nike":        "Wait for seasonal clearance - your patience will be rewarded with shoes that make you run faster (or at least look like you do)!",
	"adidas":      "Look for student discounts - because education should pay off in more ways than one!",
	"reebok":      "Check for bundle deals - because buying more to save more is the ultimate shopping hack!",
	"food":        "Order in groups - because sharing is caring, and splitting the bill is even better!",
	"fashion":     "Wait for end-of-season sales - your wardrobe will thank you, and so will your bank account!",
	"electronics": "Compare prices across platforms - because your gadget deserves the best deal, even if it means being a little disloyal!",
	"baby":        "Buy in bulk during sales - because babies go through things faster than you can say 'diaper change'!",
}

// Generic tip used when a store has no fallback entry. %s is the store.
const GenericTipFallback = "Check for seasonal sales and special promotions on %s to maximize your savings. Because who doesn't love a good deal? 😏"

// %s is the store in every intro template below.
var IntroPrompts = []string{
	"Generate a very short, casual introduction for a %s deal. Be friendly with a touch of playful sarcasm. Use 0-1 emojis naturally. Don't mention coupon codes.",
	"Generate a short, helpful introduction for a %s deal. Focus on how it can help the user save money. Add a witty observation. Use 0-1 emojis if appropriate. Don't mention coupon codes.",
	"Write a brief, informative intro for a %s deal. Be professional but warm with a hint of sarcasm. No need for excessive excitement. Don't mention coupon codes.",
	"Write a short, genuine intro about finding a good %s deal for the user. Be conversational and natural with a touch of humor. Use 0-1 emojis if appropriate. No coupon codes.",
	"Create a brief, friendly introduction about finding a %s deal. Add a playful sarcastic remark. Be helpful and straightforward. Don't mention coupon codes.",
}

var IntroFallbacks = []string{
	"Found a great %s deal for you! 🛍️",
	"Here's a %s offer you might like! (And yes, I'm actually excited about it!)",
	"Check out this %s discount I found! Your wallet will thank me later.",
	"Just spotted this %s deal for you! Another day, another savings opportunity!",
	"Great timing! Found a %s offer you might enjoy. I'm practically a shopping superhero!",
	"Take a look at this %s savings opportunity! Your bank account might actually smile for once.",
	"I've found something good on %s for you! No, I'm not just saying that to be nice.",
}

const TipPrompt = "Generate a short, helpful shopping tip for %[1]s with a touch of playful sarcasm. The tip should be specific to %[1]s and help users save money. Keep it under 50 words and make it witty."

// Keyword groups for the store-less default heuristic.
var (
	footwearWords = []string{"shoe", "shoes", "footwear", "sneaker", "trainer"}
	fashionWords  = []string{"fashion", "clothes", "clothing", "apparel"}
	foodWords     = []string{"food", "restaurant", "delivery", "eat"}

	fashionStores = []string{"myntra", "ajio", "fashion"}
	foodStores    = []string{"zomato", "swiggy", "food"}
	topStores     = []string{"amazon", "flipkart", "myntra"}
)

// LookupStore returns the first store whose alias occurs in text (already lower-cased).
func LookupStore(text string) (string, bool) {
	for _, sv := range StoreVariants {
		for _, alias := range sv.Aliases {
			if strings.Contains(text, alias) {
				return sv.ID, true
			}
		}
	}
	return "", false
}

// IsFootwearBrand reports whether id is one of the sports brands.
func IsFootwearBrand(id string) bool {
	for _, b := range FootwearBrands {
		if b == id {
			return true
		}
	}
	return false
}

// Patterns returns the code templates for a store, falling back to the default set.
func Patterns(storeID string) []string {
	if p, ok := CodePatterns[strings.ToLower(storeID)]; ok {
		return p
	}
	return CodePatterns[DefaultPattern]
}

// Discounts returns the category pool for a store if one exists, else the generic pool.
func Discounts(storeID string) []string {
	if d, ok := CategoryDiscounts[strings.ToLower(storeID)]; ok {
		return d
	}
	return GenericDiscounts
}

// DisplayName capitalises the first letter and lower-cases the rest.
func DisplayName(storeID string) string {
	if storeID == "" {
		return ""
	}
	s := strings.ToLower(storeID)
	return strings.ToUpper(s[:1]) + s[1:]
}

func containsAny(text string, words []string) bool {
	for _, w := range words {
		if strings.Contains(text, w) {
			return true
		}
	}
	return false
}
