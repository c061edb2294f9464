// FILE: pkg/coupon/synthesizer.go
// PURPOSE: Build a coupon record for a store from the catalog plus oracle-written tip and intro

package coupon

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"jugaad-deals-be/internal/pkg/logger"
	"jugaad-deals-be/pkg/chance"
	"jugaad-deals-be/pkg/llm"
)

const (
	module = "COUPON"

	minCodeNumber = 100
	maxCodeNumber = 99999

	ExpiryLayout = "02 January 2006"

	introMaxChars = 120
	introMaxWords = 12
)

// DefaultExpiryStart is the first day of the expiry window. It is a fixed
// calendar date, so generated dates go stale as time passes.
var DefaultExpiryStart = time.Date(2025, time.April, 12, 0, 0, 0, 0, time.UTC)

type Config struct {
	ExpiryStart   time.Time
	ExpiryDays    int
	OracleTimeout time.Duration
}

type Synthesizer struct {
	provider llm.LLMProvider
	rnd      chance.Source
	logger   logger.ILogger
	cfg      Config
}

func NewSynthesizer(provider llm.LLMProvider, rnd chance.Source, log logger.ILogger, cfg Config) *Synthesizer {
	if cfg.ExpiryStart.IsZero() {
		cfg.ExpiryStart = DefaultExpiryStart
	}
	if cfg.ExpiryDays <= 0 {
		cfg.ExpiryDays = 30
	}
	return &Synthesizer{
		provider: provider,
		rnd:      rnd,
		logger:   log,
		cfg:      cfg,
	}
}

// Synthesize assembles a complete deal. explicitCode, when set, replaces the
// generated code. The tip and intro each cost one oracle call, made in order.
func (s *Synthesizer) Synthesize(ctx context.Context, storeID, explicitCode string) Deal {
	storeID = strings.ToLower(strings.TrimSpace(storeID))

	code := strings.ToUpper(explicitCode)
	if code == "" {
		code = s.GenerateCode(storeID)
	}
	discount := s.GenerateDiscount(storeID)
	tip, tipOK := s.tip(ctx, storeID)

	record := Record{
		Code:       code,
		Discount:   discount,
		Store:      DisplayName(storeID),
		Details:    Details(storeID, discount),
		ExpiryDate: s.GenerateExpiry(),
		Tip:        tip,
	}

	intro, introOK := s.intro(ctx, storeID)
	return Deal{
		StoreID:  storeID,
		Intro:    intro,
		Record:   record,
		Degraded: !tipOK || !introOK,
	}
}

func (s *Synthesizer) GenerateCode(storeID string) string {
	pattern := chance.Pick(s.rnd, Patterns(storeID))
	num := chance.Between(s.rnd, minCodeNumber, maxCodeNumber)
	return strings.Replace(pattern, "{num}", strconv.Itoa(num), 1)
}

func (s *Synthesizer) GenerateDiscount(storeID string) string {
	return chance.Pick(s.rnd, Discounts(storeID))
}

func (s *Synthesizer) GenerateExpiry() string {
	offset := s.rnd.Intn(s.cfg.ExpiryDays)
	return s.cfg.ExpiryStart.AddDate(0, 0, offset).Format(ExpiryLayout)
}

// ExpiryWindow returns the first and last day an expiry can fall on.
func (s *Synthesizer) ExpiryWindow() (time.Time, time.Time) {
	return s.cfg.ExpiryStart, s.cfg.ExpiryStart.AddDate(0, 0, s.cfg.ExpiryDays-1)
}

// Details derives the description line from the store and discount text.
func Details(storeID, discount string) string {
	d := strings.ToLower(discount)

	if IsFootwearBrand(strings.ToLower(storeID)) {
		switch {
		case strings.Contains(d, "shoes"):
			return fmt.Sprintf("Special offer on footwear! Use this code at checkout to get %s.", discount)
		case strings.Contains(d, "apparel"):
			return fmt.Sprintf("Exclusive clothing deal! Apply this code to receive %s.", discount)
		case strings.Contains(d, "free"):
			return fmt.Sprintf("Limited time offer! %s when you shop now.", discount)
		default:
			return fmt.Sprintf("Special savings on %s products! Use this code to get %s.", DisplayName(storeID), discount)
		}
	}

	switch {
	case strings.Contains(d, "free delivery"):
		return fmt.Sprintf("No delivery charges! Use this code to get %s.", discount)
	case strings.Contains(d, "emi"):
		return fmt.Sprintf("Easy payment options! %s when you use this code.", discount)
	default:
		return fmt.Sprintf("Special offer for our valued customers! Use this code at checkout to get %s.", discount)
	}
}

// Tip asks the oracle for a store tip and falls back to the static table.
func (s *Synthesizer) Tip(ctx context.Context, storeID string) string {
	tip, _ := s.tip(ctx, storeID)
	return tip
}

// tip reports false when the fallback was used.
func (s *Synthesizer) tip(ctx context.Context, storeID string) (string, bool) {
	tip, err := llm.GenerateWithin(ctx, s.provider, s.cfg.OracleTimeout, fmt.Sprintf(TipPrompt, storeID))
	if err == nil {
		return tip, true
	}

	s.logger.Warn(module, "Shopping tip generation failed, using fallback", map[string]interface{}{
		"store": storeID,
		"error": err.Error(),
	})
	if fallback, ok := TipFallbacks[storeID]; ok {
		return fallback, false
	}
	return fmt.Sprintf(GenericTipFallback, storeID), false
}

// Intro asks the oracle for a one-line deal introduction using a random prompt style.
func (s *Synthesizer) Intro(ctx context.Context, storeID string) string {
	intro, _ := s.intro(ctx, storeID)
	return intro
}

func (s *Synthesizer) intro(ctx context.Context, storeID string) (string, bool) {
	prompt := fmt.Sprintf(chance.Pick(s.rnd, IntroPrompts), storeID)

	intro, err := llm.GenerateWithin(ctx, s.provider, s.cfg.OracleTimeout, prompt)
	if err != nil {
		s.logger.Warn(module, "Friendly intro generation failed, using fallback", map[string]interface{}{
			"store": storeID,
			"error": err.Error(),
		})
		return fmt.Sprintf(chance.Pick(s.rnd, IntroFallbacks), storeID), false
	}

	return shortenIntro(intro), true
}

func shortenIntro(intro string) string {
	if utf8.RuneCountInString(intro) <= introMaxChars {
		return intro
	}
	words := strings.Fields(intro)
	if len(words) > introMaxWords {
		words = words[:introMaxWords]
	}
	return strings.Join(words, " ") + "!"
}

// DefaultStore picks a store when a coupon is requested without naming one.
// text must already be lower-cased.
func (s *Synthesizer) DefaultStore(text string) string {
	switch {
	case containsAny(text, footwearWords):
		return chance.Pick(s.rnd, FootwearBrands)
	case containsAny(text, fashionWords):
		return chance.Pick(s.rnd, fashionStores)
	case containsAny(text, foodWords):
		return chance.Pick(s.rnd, foodStores)
	default:
		return chance.Pick(s.rnd, topStores)
	}
}
