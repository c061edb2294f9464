package bootstrap

import (
	"context"
	"fmt"
	"log"

	"jugaad-deals-be/internal/config"
	"jugaad-deals-be/internal/constant"
	"jugaad-deals-be/internal/controller"
	"jugaad-deals-be/internal/pkg/logger"
	"jugaad-deals-be/internal/repository/memory"
	"jugaad-deals-be/internal/service"
	"jugaad-deals-be/pkg/chance"
	"jugaad-deals-be/pkg/coupon"
	"jugaad-deals-be/pkg/dispatch"
	"jugaad-deals-be/pkg/events"
	"jugaad-deals-be/pkg/intent"
	"jugaad-deals-be/pkg/llm"
	"jugaad-deals-be/pkg/llm/factory"
	pktNats "jugaad-deals-be/pkg/nats"
	"jugaad-deals-be/pkg/ratelimit"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
)

type Container struct {
	Logger      *logger.ZapLogger
	Dispatcher  *dispatch.Dispatcher
	SessionRepo *memory.SessionRepository

	ChatService  service.IChatService
	StatsService service.IStatsService

	ChatController  controller.IChatController
	AdminController controller.IAdminController

	closers []func()
}

// Engine holds the message-handling core without any transport around it.
type Engine struct {
	Dispatcher  *dispatch.Dispatcher
	SessionRepo *memory.SessionRepository
	Provider    llm.LLMProvider
}

// NewEngine builds the classifier, synthesizer, limiter and dispatcher on top
// of the configured oracle provider.
func NewEngine(ctx context.Context, cfg *config.Config, sysLogger logger.ILogger) (*Engine, error) {
	llmProvider, err := factory.NewLLMProvider(
		ctx,
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.GoogleAPIKey,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize LLM provider: %w", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	return NewEngineWithProvider(cfg, llmProvider, sysLogger), nil
}

func NewEngineWithProvider(cfg *config.Config, llmProvider llm.LLMProvider, sysLogger logger.ILogger) *Engine {
	rnd := chance.New(cfg.App.RandomSeed)

	classifier := intent.NewClassifier(rnd)
	synthesizer := coupon.NewSynthesizer(llmProvider, rnd, sysLogger, coupon.Config{
		ExpiryStart:   cfg.Coupon.ExpiryStart,
		ExpiryDays:    cfg.Coupon.ExpiryDays,
		OracleTimeout: cfg.Ai.OracleTimeout,
	})
	limiter := ratelimit.NewLimiter(cfg.RateLimit.Max, cfg.RateLimit.Window, sysLogger)

	dispatcher := dispatch.NewDispatcher(
		classifier,
		synthesizer,
		limiter,
		llmProvider,
		rnd,
		sysLogger,
		cfg.Ai.OracleTimeout,
	)
	sessionRepo := memory.NewSessionRepository(llmProvider, cfg.App.SessionTTL, cfg.Ai.OracleTimeout, cfg.App.MaxSessions, sysLogger)

	return &Engine{
		Dispatcher:  dispatcher,
		SessionRepo: sessionRepo,
		Provider:    llmProvider,
	}
}

func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	engine, err := NewEngine(ctx, cfg, sysLogger)
	if err != nil {
		return nil, err
	}

	return NewContainerWithEngine(cfg, sysLogger, engine), nil
}

// NewContainerWithEngine wires events, services and controllers around an
// already built engine.
func NewContainerWithEngine(cfg *config.Config, sysLogger *logger.ZapLogger, engine *Engine) *Container {
	c := &Container{
		Logger:      sysLogger,
		Dispatcher:  engine.Dispatcher,
		SessionRepo: engine.SessionRepo,
	}

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermillLogger,
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	publishers := events.Fanout{service.NewPublisherService(constant.TopicChatAnswered, pubSub)}

	// NATS (optional)
	if cfg.App.NatsURL != "" {
		natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
		} else {
			publishers = append(publishers, natsPub)
			c.closers = append(c.closers, natsPub.Close)
		}
	}

	// 3. Stats backend: Redis when configured, in-memory otherwise
	counter := service.NewCacheCounter()
	if cfg.App.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{
				Addr: cfg.App.RedisURL,
			}
		}
		rdb := redis.NewClient(opt)
		if _, err := rdb.Ping(context.Background()).Result(); err != nil {
			log.Printf("[WARN] Failed to connect to Redis: %v. Using in-memory stats", err)
			_ = rdb.Close()
		} else {
			counter = service.NewRedisCounter(rdb)
			c.closers = append(c.closers, func() { _ = rdb.Close() })
		}
	}

	// 4. Services
	c.ChatService = service.NewChatService(engine.Dispatcher, engine.SessionRepo, publishers, sysLogger)
	c.StatsService = service.NewStatsService(pubSub, constant.TopicChatAnswered, counter, engine.SessionRepo, sysLogger)

	// 5. Controllers
	c.ChatController = controller.NewChatController(c.ChatService)
	c.AdminController = controller.NewAdminController(c.StatsService, sysLogger, cfg.App.JWTSecret)

	return c
}

// Close releases event bus and backend connections.
func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}
