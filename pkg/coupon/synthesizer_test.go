package coupon

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"jugaad-deals-be/internal/pkg/logger"
	"jugaad-deals-be/pkg/chance"
	"jugaad-deals-be/pkg/llm/llmtest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSynthesizer(provider *llmtest.Provider) *Synthesizer {
	return NewSynthesizer(provider, chance.New(1), logger.NewNopLogger(), Config{
		OracleTimeout: time.Second,
	})
}

func TestGenerateCode_PumaPattern(t *testing.T) {
	s := newTestSynthesizer(&llmtest.Provider{Reply: "tip"})
	re := regexp.MustCompile(`^(PUMA|SPORT|RUN|STYLE|FIT)(\d+)$`)

	for i := 0; i < 200; i++ {
		code := s.GenerateCode("puma")
		m := re.FindStringSubmatch(code)
		require.NotNil(t, m, code)

		var n int
		_, err := fmt.Sscanf(m[2], "%d", &n)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100)
		assert.LessOrEqual(t, n, 99999)
	}
}

func TestGenerateCode_UnknownStoreUsesDefault(t *testing.T) {
	s := newTestSynthesizer(&llmtest.Provider{})
	re := regexp.MustCompile(`^(SAVE|DEAL|OFF|FLASH|BEST|HAPPY|SPECIAL)\d+$`)

	for i := 0; i < 50; i++ {
		assert.Regexp(t, re, s.GenerateCode("croma"))
	}
}

func TestGenerateDiscount_CategoryPool(t *testing.T) {
	s := newTestSynthesizer(&llmtest.Provider{})

	for i := 0; i < 50; i++ {
		assert.Contains(t, CategoryDiscounts["nike"], s.GenerateDiscount("nike"))
		assert.Contains(t, GenericDiscounts, s.GenerateDiscount("amazon"))
	}
}

func TestGenerateExpiry_InsideWindow(t *testing.T) {
	s := newTestSynthesizer(&llmtest.Provider{})
	first, last := s.ExpiryWindow()

	assert.Equal(t, DefaultExpiryStart, first)
	assert.Equal(t, "11 May 2025", last.Format(ExpiryLayout))

	for i := 0; i < 200; i++ {
		raw := s.GenerateExpiry()
		assert.Regexp(t, `^\d{2} [A-Z][a-z]+ \d{4}$`, raw)

		parsed, err := time.Parse(ExpiryLayout, raw)
		require.NoError(t, err)
		assert.False(t, parsed.Before(first), raw)
		assert.False(t, parsed.After(last), raw)
	}
}

func TestDetails(t *testing.T) {
	tests := []struct {
		store    string
		discount string
		want     string
	}{
		{"puma", "20% off on all shoes", "Special offer on footwear! Use this code at checkout to get 20% off on all shoes."},
		{"nike", "30% off on sports apparel", "Exclusive clothing deal! Apply this code to receive 30% off on sports apparel."},
		{"reebok", "Buy 2 Get 1 Free on apparel", "Exclusive clothing deal! Apply this code to receive Buy 2 Get 1 Free on apparel."},
		{"adidas", "Flat ₹1200 off on Ultra Boost", "Special savings on Adidas products! Use this code to get Flat ₹1200 off on Ultra Boost."},
		{"food", "Free delivery on orders above ₹199", "No delivery charges! Use this code to get Free delivery on orders above ₹199."},
		{"electronics", "No-cost EMI on ₹15000+", "Easy payment options! No-cost EMI on ₹15000+ when you use this code."},
		{"amazon", "10% off", "Special offer for our valued customers! Use this code at checkout to get 10% off."},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Details(tt.store, tt.discount), tt.store)
	}
}

func TestSynthesize_WithOracle(t *testing.T) {
	provider := &llmtest.Provider{Reply: "Grab it before it's gone!"}
	s := newTestSynthesizer(provider)

	deal := s.Synthesize(context.Background(), "Amazon", "")

	assert.Equal(t, "amazon", deal.StoreID)
	assert.Equal(t, "Amazon", deal.Record.Store)
	assert.Equal(t, "Grab it before it's gone!", deal.Record.Tip)
	assert.Equal(t, "Grab it before it's gone!", deal.Intro)
	assert.Equal(t, 2, provider.Calls())
	assert.Contains(t, provider.Prompts()[0], "shopping tip for amazon")
	assert.False(t, deal.Degraded)

	out := deal.String()
	assert.True(t, strings.HasPrefix(out, deal.Intro+"\n\n"))
	assert.Contains(t, out, "🛍️ STORE: Amazon")
}

func TestSynthesize_ExplicitCodeWins(t *testing.T) {
	s := newTestSynthesizer(&llmtest.Provider{Reply: "ok"})

	deal := s.Synthesize(context.Background(), "flipkart", "save10")
	assert.Equal(t, "SAVE10", deal.Record.Code)
}

func TestSynthesize_OracleFailureFallsBack(t *testing.T) {
	s := newTestSynthesizer(&llmtest.Provider{Err: errors.New("quota exceeded")})

	deal := s.Synthesize(context.Background(), "zomato", "")
	assert.Equal(t, TipFallbacks["zomato"], deal.Record.Tip)
	assert.True(t, deal.Degraded)

	var intros []string
	for _, tpl := range IntroFallbacks {
		intros = append(intros, fmt.Sprintf(tpl, "zomato"))
	}
	assert.Contains(t, intros, deal.Intro)

	deal = s.Synthesize(context.Background(), "croma", "")
	assert.Equal(t, fmt.Sprintf(GenericTipFallback, "croma"), deal.Record.Tip)
}

func TestSynthesize_OracleTimeoutFallsBack(t *testing.T) {
	s := NewSynthesizer(&llmtest.Provider{Block: true}, chance.New(1), logger.NewNopLogger(), Config{
		OracleTimeout: 10 * time.Millisecond,
	})

	deal := s.Synthesize(context.Background(), "myntra", "")
	assert.Equal(t, TipFallbacks["myntra"], deal.Record.Tip)
	assert.True(t, deal.Degraded)
}

func TestIntro_LongReplyShortened(t *testing.T) {
	long := strings.Repeat("amazing ", 30)
	s := newTestSynthesizer(&llmtest.Provider{Reply: long})

	intro := s.Intro(context.Background(), "nykaa")
	assert.Equal(t, strings.TrimSpace(strings.Repeat("amazing ", 12))+"!", intro)
}

func TestDefaultStore(t *testing.T) {
	s := newTestSynthesizer(&llmtest.Provider{})

	for i := 0; i < 20; i++ {
		assert.Contains(t, FootwearBrands, s.DefaultStore("i need a sneaker coupon"))
		assert.Contains(t, []string{"myntra", "ajio", "fashion"}, s.DefaultStore("clothes code please"))
		assert.Contains(t, []string{"zomato", "swiggy", "food"}, s.DefaultStore("coupon to eat out"))
		assert.Contains(t, []string{"amazon", "flipkart", "myntra"}, s.DefaultStore("just give me a coupon"))
	}
}

func TestRecordFormat(t *testing.T) {
	r := Record{
		Code:       "SAVE123",
		Discount:   "10% off",
		Store:      "Amazon",
		Details:    "details",
		ExpiryDate: "20 April 2025",
		Tip:        "tip",
	}

	lines := strings.Split(r.Format(), "\n")
	require.Len(t, lines, 6)
	assert.Equal(t, "🏷️ CODE: SAVE123", lines[0])
	assert.Equal(t, "💰 DISCOUNT: 10% off", lines[1])
	assert.Equal(t, "🛍️ STORE: Amazon", lines[2])
	assert.Equal(t, "📝 DETAILS: details", lines[3])
	assert.Equal(t, "⏰ VALID TILL: 20 April 2025", lines[4])
	assert.Equal(t, "💡 TIP: tip", lines[5])
}

func TestPatternsCoverEveryStore(t *testing.T) {
	for _, sv := range StoreVariants {
		assert.NotEmpty(t, Patterns(sv.ID), sv.ID)
		_, ok := CodePatterns[sv.ID]
		assert.True(t, ok, sv.ID)
	}
	assert.Equal(t, CodePatterns[DefaultPattern], Patterns("unknown"))
}
