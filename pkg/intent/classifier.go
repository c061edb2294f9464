// Package intent decides which response category applies to a chat message and
// extracts the entities the response needs (store, explicit coupon code, name).
//
// Classification is an ordered rule table evaluated top to bottom; the first
// rule that matches decides the category. Earlier rules shadow later ones, so
// the order of the table is part of the behaviour.
package intent

import (
	"strings"
	"unicode"

	"jugaad-deals-be/pkg/chance"
	"jugaad-deals-be/pkg/coupon"
)

// input is the message in the forms the rules look at.
type input struct {
	raw   string // trimmed, original case
	text  string // trimmed, lower case
	words []string
}

type rule struct {
	category Category
	// match reports whether the rule applies and may fill entity fields on res.
	match func(c *Classifier, in input, res *Result) bool
}

type Classifier struct {
	rnd   chance.Source
	rules []rule
}

// NewClassifier builds a classifier. rnd is only used to pick a brand for
// generic footwear/apparel words.
func NewClassifier(rnd chance.Source) *Classifier {
	return &Classifier{
		rnd:   rnd,
		rules: defaultRules(),
	}
}

func defaultRules() []rule {
	return []rule{
		{CategoryGreeting, matchGreeting},
		{CategoryHowAreYou, phraseRule(howAreYouPhrases)},
		{CategoryThanks, matchThanks},
		{CategoryCompliment, phraseRule(complimentPhrases)},
		{CategoryTimeGreeting, exactRule(timeGreetings)},
		{CategoryAffirmative, exactRule(affirmativeWords)},
		{CategoryNegative, exactRule(negativeWords)},
		{CategoryIdentity, matchIdentity},
		{CategoryIntroduction, matchIntroduction},
		{CategoryCouponRequest, matchCoupon},
		{CategoryOffTopic, matchOffTopic},
	}
}

// Classify never fails; anything no rule claims is CategoryGeneral.
func (c *Classifier) Classify(message string) Result {
	raw := strings.TrimSpace(message)
	in := input{
		raw:   raw,
		text:  strings.ToLower(raw),
		words: strings.Fields(strings.ToLower(raw)),
	}

	res := Result{
		Category:     CategoryGeneral,
		ExplicitCode: ExtractCode(raw),
	}

	for _, r := range c.rules {
		if r.match(c, in, &res) {
			// matchCoupon may downgrade to clarification itself.
			if res.Category == CategoryGeneral {
				res.Category = r.category
			}
			return res
		}
	}
	return res
}

func matchGreeting(_ *Classifier, in input, _ *Result) bool {
	for _, g := range greetingWords {
		if in.text == g || strings.HasPrefix(in.text, g+" ") {
			return true
		}
	}
	return false
}

func matchThanks(_ *Classifier, in input, _ *Result) bool {
	return containsAny(in.text, thanksPhrases) && len(in.words) < 5
}

func matchIdentity(_ *Classifier, in input, _ *Result) bool {
	for _, k := range identityKeywords {
		if !strings.Contains(in.text, k) {
			continue
		}
		if k == "name" && selfIntroPattern.MatchString(in.text) {
			continue
		}
		return true
	}
	return false
}

func matchIntroduction(_ *Classifier, in input, res *Result) bool {
	for _, p := range introductionPatterns {
		if m := p.FindStringSubmatch(in.text); m != nil {
			res.Name = capitalize(m[1])
			return true
		}
	}
	return false
}

func matchCoupon(c *Classifier, in input, res *Result) bool {
	store := c.ExtractStore(in.text)
	if store != "" {
		res.StoreID = store
		res.Category = CategoryCouponRequest
		return true
	}

	if !containsAny(in.text, couponKeywords) {
		return false
	}
	if containsAny(in.text, directAskWords) {
		res.Category = CategoryCouponRequest
	} else {
		res.Category = CategoryClarification
	}
	return true
}

func matchOffTopic(_ *Classifier, in input, _ *Result) bool {
	if containsAny(in.text, offTopicKeywords) {
		return true
	}

	question := strings.TrimRight(in.text, "?!. ")
	for _, p := range offTopicPatterns {
		m := p.FindStringSubmatch(question)
		if m == nil {
			continue
		}
		if !containsAny(m[1], shoppingTerms) {
			return true
		}
	}
	return false
}

// ExtractStore resolves a store id from lower-cased text: catalog aliases
// first, then bare brand tokens, then generic apparel words mapped to a random
// sports brand.
func (c *Classifier) ExtractStore(text string) string {
	if id, ok := coupon.LookupStore(text); ok {
		return id
	}

	for _, word := range strings.Fields(text) {
		if len(word) < 3 || contains(storeStopWords, word) {
			continue
		}
		if coupon.IsFootwearBrand(word) {
			return word
		}
		if contains(genericApparelWords, word) {
			return chance.Pick(c.rnd, coupon.FootwearBrands)
		}
	}
	return ""
}

// ExtractCode finds a coupon code the user typed ("use code SAVE10"). A
// candidate must contain a digit, or be written in capitals and not be a
// common word, which keeps "COUPON CODE FOR NIKE" from yielding "FOR".
func ExtractCode(raw string) string {
	for _, p := range explicitCodePatterns {
		for _, m := range p.FindAllStringSubmatch(raw, -1) {
			if looksLikeCode(m[1]) {
				return strings.ToUpper(m[1])
			}
		}
	}
	return ""
}

func looksLikeCode(s string) bool {
	if strings.IndexFunc(s, unicode.IsDigit) >= 0 {
		return true
	}
	if s == "" || strings.IndexFunc(s, unicode.IsLower) >= 0 {
		return false
	}
	return !contains(codeStopWords, strings.ToLower(s))
}

func phraseRule(phrases []string) func(*Classifier, input, *Result) bool {
	return func(_ *Classifier, in input, _ *Result) bool {
		return containsAny(in.text, phrases)
	}
}

func exactRule(words []string) func(*Classifier, input, *Result) bool {
	return func(_ *Classifier, in input, _ *Result) bool {
		return contains(words, in.text)
	}
}

func containsAny(text string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(text, n) {
			return true
		}
	}
	return false
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	s = strings.ToLower(s)
	return strings.ToUpper(s[:1]) + s[1:]
}
