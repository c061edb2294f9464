package intent

import (
	"testing"

	"jugaad-deals-be/pkg/chance"
	"jugaad-deals-be/pkg/coupon"

	"github.com/stretchr/testify/assert"
)

func newTestClassifier() *Classifier {
	return NewClassifier(chance.New(42))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		category Category
		store    string
		code     string
		person   string
	}{
		{name: "bare greeting", message: "hi", category: CategoryGreeting},
		{name: "greeting with trailing words", message: "Hello there", category: CategoryGreeting},
		{name: "greeting padded", message: "  namaste  ", category: CategoryGreeting},
		{name: "how are you", message: "hey, how are you?", category: CategoryHowAreYou},
		{name: "thanks short", message: "thanks a lot", category: CategoryThanks},
		{name: "compliment", message: "you are amazing", category: CategoryCompliment},
		{name: "time greeting", message: "Good Morning", category: CategoryTimeGreeting},
		{name: "affirmative", message: "yes", category: CategoryAffirmative},
		{name: "negative", message: "nope", category: CategoryNegative},
		{name: "identity", message: "what is your name", category: CategoryIdentity},
		{name: "introduction", message: "my name is Raj", category: CategoryIntroduction, person: "Raj"},
		{name: "introduction call me", message: "you can call me priya", category: CategoryIntroduction, person: "Priya"},
		{name: "store coupon", message: "give me an amazon coupon", category: CategoryCouponRequest, store: "amazon"},
		{name: "store alias", message: "any offers on big basket", category: CategoryCouponRequest, store: "bigbasket"},
		{name: "brand token", message: "discount on nike", category: CategoryCouponRequest, store: "nike"},
		{name: "direct ask no store", message: "just give me a discount", category: CategoryCouponRequest},
		{name: "vague deal ask", message: "any good deals", category: CategoryClarification},
		{name: "explicit code", message: "use code SAVE10", category: CategoryCouponRequest, code: "SAVE10"},
		{name: "off-topic keyword", message: "tell me a joke", category: CategoryOffTopic},
		{name: "off-topic question", message: "what is the capital of France", category: CategoryOffTopic},
		{name: "shopping question", message: "what is the best online sale", category: CategoryGeneral},
		{name: "fallthrough", message: "recommend a laptop bag", category: CategoryGeneral},
		{name: "empty", message: "   ", category: CategoryGeneral},
	}

	c := newTestClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := c.Classify(tt.message)

			assert.Equal(t, tt.category, res.Category)
			assert.Equal(t, tt.store, res.StoreID)
			assert.Equal(t, tt.code, res.ExplicitCode)
			assert.Equal(t, tt.person, res.Name)
		})
	}
}

func TestClassify_ExplicitCodeAttachedToAnyCategory(t *testing.T) {
	c := newTestClassifier()

	res := c.Classify("hi use code WELCOME50")
	assert.Equal(t, CategoryGreeting, res.Category)
	assert.Equal(t, "WELCOME50", res.ExplicitCode)

	res = c.Classify("is coupon for flipkart any good")
	assert.Equal(t, "flipkart", res.StoreID)
	assert.Empty(t, res.ExplicitCode, "plain words after 'coupon' are not codes")
}

func TestClassify_EveryAliasResolves(t *testing.T) {
	c := newTestClassifier()
	for _, sv := range coupon.StoreVariants {
		for _, alias := range sv.Aliases {
			assert.Equal(t, sv.ID, c.ExtractStore(alias), "alias %q", alias)
		}
	}
}

func TestExtractStore_GenericApparelPicksBrand(t *testing.T) {
	c := newTestClassifier()
	for i := 0; i < 20; i++ {
		store := c.ExtractStore("need new footwear")
		assert.Contains(t, coupon.FootwearBrands, store)
	}
}

func TestExtractCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"use code SAVE10", "SAVE10"},
		{"use code save10", "SAVE10"},
		{"promo FLAT", "FLAT"},
		{"voucher abc", ""},
		{"coupon code for amazon", ""},
		{"GIVE ME A COUPON CODE FOR NIKE", ""},
		{"USE CODE NIKE20 FOR NIKE", "NIKE20"},
		{"USE CODE THE", ""},
		{"no code here", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ExtractCode(tt.in), tt.in)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	messages := []string{"hi", "give me shoes coupon", "my name is Raj", "what is gravity"}

	a := NewClassifier(chance.New(7))
	b := NewClassifier(chance.New(7))
	for _, m := range messages {
		assert.Equal(t, a.Classify(m), b.Classify(m), m)
	}

	c := newTestClassifier()
	for _, m := range []string{"hi", "use code SAVE10", "what is the capital of France"} {
		assert.Equal(t, c.Classify(m), c.Classify(m), m)
	}
}
