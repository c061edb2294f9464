// FILE: pkg/dispatch/dispatcher.go
// PURPOSE: Turn one chat message into one reply: admit, classify, then answer
//          from a canned pool, the coupon synthesizer or the oracle.

package dispatch

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jugaad-deals-be/internal/constant"
	"jugaad-deals-be/internal/pkg/logger"
	"jugaad-deals-be/pkg/chance"
	"jugaad-deals-be/pkg/coupon"
	"jugaad-deals-be/pkg/intent"
	"jugaad-deals-be/pkg/llm"
)

const module = "DISPATCH"

// Admitter gates work before it starts. ratelimit.Limiter implements it.
type Admitter interface {
	Admit(ctx context.Context) error
}

// SessionSource resolves a chat session by id, creating it when needed.
// memory.SessionRepository implements it.
type SessionSource interface {
	GetOrCreate(ctx context.Context, sessionID string) *llm.Session
}

// Reply is what the dispatcher produced for one message.
type Reply struct {
	Text     string
	Result   intent.Result
	StoreID  string // store the coupon was generated for, including defaulted ones
	Degraded bool   // a fixed fallback replaced oracle output, or an internal failure was recovered
}

type Dispatcher struct {
	classifier    *intent.Classifier
	synthesizer   *coupon.Synthesizer
	limiter       Admitter
	provider      llm.LLMProvider
	rnd           chance.Source
	logger        logger.ILogger
	oracleTimeout time.Duration
}

func NewDispatcher(
	classifier *intent.Classifier,
	synthesizer *coupon.Synthesizer,
	limiter Admitter,
	provider llm.LLMProvider,
	rnd chance.Source,
	log logger.ILogger,
	oracleTimeout time.Duration,
) *Dispatcher {
	return &Dispatcher{
		classifier:    classifier,
		synthesizer:   synthesizer,
		limiter:       limiter,
		provider:      provider,
		rnd:           rnd,
		logger:        log,
		oracleTimeout: oracleTimeout,
	}
}

// Respond is Dispatch without the metadata.
func (d *Dispatcher) Respond(ctx context.Context, session *llm.Session, message string) string {
	return d.Dispatch(ctx, session, message).Text
}

// Dispatch never panics and always returns a reply text. session may be nil,
// in which case free-form prompts go to the provider without persona context.
func (d *Dispatcher) Dispatch(ctx context.Context, session *llm.Session, message string) Reply {
	return d.dispatch(ctx, message, func(context.Context) *llm.Session { return session })
}

// DispatchSession is Dispatch for a session looked up by id. The lookup runs
// only after the limiter admits the message, so a refused message never
// creates or primes a session.
func (d *Dispatcher) DispatchSession(ctx context.Context, sessions SessionSource, sessionID, message string) Reply {
	return d.dispatch(ctx, message, func(ctx context.Context) *llm.Session {
		return sessions.GetOrCreate(ctx, sessionID)
	})
}

func (d *Dispatcher) dispatch(ctx context.Context, message string, resolve func(context.Context) *llm.Session) (reply Reply) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error(module, "Recovered from panic while building reply", map[string]interface{}{
				"error": fmt.Sprint(r),
			})
			reply = Reply{Text: Apology, Result: reply.Result, Degraded: true}
		}
	}()

	if err := d.limiter.Admit(ctx); err != nil {
		d.logger.Error(module, "Rate limiter wait aborted", map[string]interface{}{
			"error": err.Error(),
		})
		return Reply{Text: Apology, Result: intent.Result{Category: intent.CategoryGeneral}, Degraded: true}
	}

	session := resolve(ctx)

	res := d.classifier.Classify(message)
	reply.Result = res

	d.logger.Debug(module, "Message classified", map[string]interface{}{
		"category":      string(res.Category),
		"store":         res.StoreID,
		"explicit_code": res.ExplicitCode,
	})

	switch res.Category {
	case intent.CategoryCouponRequest:
		storeID := res.StoreID
		if storeID == "" {
			storeID = d.synthesizer.DefaultStore(strings.ToLower(strings.TrimSpace(message)))
		}
		deal := d.synthesizer.Synthesize(ctx, storeID, res.ExplicitCode)
		reply.StoreID = deal.StoreID
		reply.Text = deal.String()
		reply.Degraded = deal.Degraded

	case intent.CategoryClarification:
		text, err := llm.GenerateWithin(ctx, d.provider, d.oracleTimeout, constant.ClarificationPromptV1)
		if err != nil {
			d.oracleFailed("clarification", err)
			text, reply.Degraded = ClarificationFallback, true
		}
		reply.Text = text

	case intent.CategoryGeneral:
		text, err := d.askGeneral(ctx, session, message)
		if err != nil {
			d.oracleFailed("general", err)
			text, reply.Degraded = GeneralFallback, true
		}
		reply.Text = text

	case intent.CategoryTimeGreeting:
		reply.Text = fmt.Sprintf(chance.Pick(d.rnd, Replies(res.Category)), capitalizeSentence(message))

	case intent.CategoryIntroduction:
		reply.Text = d.withTagline(res.Category, fmt.Sprintf(chance.Pick(d.rnd, Replies(res.Category)), res.Name))

	default:
		reply.Text = d.withTagline(res.Category, chance.Pick(d.rnd, Replies(res.Category)))
	}

	return reply
}

func (d *Dispatcher) askGeneral(ctx context.Context, session *llm.Session, message string) (string, error) {
	prompt := fmt.Sprintf(constant.GeneralPromptV1, message)
	if session != nil {
		return session.Ask(ctx, prompt)
	}
	return llm.GenerateWithin(ctx, d.provider, d.oracleTimeout, prompt)
}

func (d *Dispatcher) withTagline(c intent.Category, text string) string {
	if p, ok := taglineChance[c]; ok && chance.Chance(d.rnd, p) {
		return text + Tagline
	}
	return text
}

func (d *Dispatcher) oracleFailed(kind string, err error) {
	d.logger.Warn(module, "Oracle call failed, using fallback reply", map[string]interface{}{
		"kind":  kind,
		"error": err.Error(),
	})
}

// capitalizeSentence upper-cases the first letter and lower-cases the rest.
func capitalizeSentence(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
