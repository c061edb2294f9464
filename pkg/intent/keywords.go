package intent

import "regexp"

var (
	greetingWords = []string{"hi", "hello", "hey", "hola", "namaste", "greetings"}

	howAreYouPhrases = []string{"how are you", "how you doing", "how's it going", "how are things",
		"what's up", "how do you do", "how have you been"}

	thanksPhrases = []string{"thank you", "thanks", "thx", "thank u", "appreciate it", "grateful"}

	complimentPhrases = []string{"you're nice", "you are nice", "you're good", "you are good",
		"you're helpful", "you are helpful", "you're amazing", "you are amazing"}

	timeGreetings = []string{"good morning", "morning", "good afternoon", "good evening", "evening"}

	affirmativeWords = []string{"yes", "yeah", "yep", "sure", "okay", "ok", "yup"}

	negativeWords = []string{"no", "nope", "nah", "not now", "not really"}

	identityKeywords = []string{"name", "who are you", "what are you", "your name",
		"introduce yourself", "tell me about yourself"}

	couponKeywords = []string{"coupon", "code", "deal", "discount", "offer", "save", "promo", "voucher", "give me"}

	// A coupon request without a store only gets a default store when phrased as a direct ask.
	directAskWords = []string{"just", "give", "code", "coupon"}

	storeStopWords = []string{"the", "and", "for", "from", "with", "that", "this", "have", "what"}

	// capitalised words that read as text, not as a typed code
	codeStopWords = []string{
		"a", "an", "the", "for", "on", "at", "to", "in", "of", "and", "or", "from", "with",
		"me", "my", "i", "is", "it", "any", "some", "this", "that", "please", "pls", "now",
		"code", "coupon", "coupons", "promo", "voucher", "deal", "deals", "offer", "off",
	}

	genericApparelWords = []string{"shoes", "clothing", "apparel", "footwear"}

	offTopicKeywords = []string{
		"politics", "news", "weather", "sports", "movie", "tv show", "religion",
		"math", "science", "history", "philosophy", "joke", "story", "recipe",
		"calculate", "solve", "explain why", "explain how", "what is the meaning of",
		"who invented", "when was", "where is", "teach me", "tell me about", "write",
		"poetry", "song", "music", "health", "medicine", "disease", "advice",
		"earth", "sun", "moon", "planet", "star", "space", "universe", "galaxy",
		"animal", "plant", "biology", "chemistry", "physics", "geography", "ocean",
		"country", "language", "education", "technology", "computer", "internet",
		"war", "president", "king", "queen", "leader", "government", "law", "culture",
	}

	shoppingTerms = []string{"shop", "buy", "deal", "coupon", "discount", "offer", "sale",
		"price", "store", "mall", "online", "brand", "product"}
)

var (
	introductionPatterns = []*regexp.Regexp{
		regexp.MustCompile(`\bmy name is (\w+)`),
		regexp.MustCompile(`\bi am (\w+)`),
		regexp.MustCompile(`\bi'm (\w+)`),
		regexp.MustCompile(`\bcall me (\w+)`),
	}

	// Stops the bare "name" identity keyword from swallowing self-introductions.
	selfIntroPattern = regexp.MustCompile(`\bmy name is\b`)

	explicitCodePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\buse code\s+([a-z0-9]+)`),
		regexp.MustCompile(`(?i)\bcode\s+([a-z0-9]+)`),
		regexp.MustCompile(`(?i)\bcoupon\s+([a-z0-9]+)`),
		regexp.MustCompile(`(?i)\bpromo\s+([a-z0-9]+)`),
		regexp.MustCompile(`(?i)\bvoucher\s+([a-z0-9]+)`),
	}

	offTopicPatterns = []*regexp.Regexp{
		regexp.MustCompile(`^what is ([a-z ]+)$`),
		regexp.MustCompile(`^who is ([a-z ]+)$`),
		regexp.MustCompile(`^how does ([a-z ]+) work$`),
		regexp.MustCompile(`^why does ([a-z ]+)`),
		regexp.MustCompile(`^tell me about ([a-z ]+)$`),
		regexp.MustCompile(`^explain ([a-z ]+)$`),
	}
)
