package bootstrap

import (
	"context"

	"sahasrayogam-be/internal/config"
	"sahasrayogam-be/internal/controller"
	"sahasrayogam-be/internal/entity"
	"sahasrayogam-be/internal/fallback"
	"sahasrayogam-be/internal/handler"
	"sahasrayogam-be/internal/pkg/logger"
	"sahasrayogam-be/internal/repository/contract"
	"sahasrayogam-be/internal/repository/implementation"
	"sahasrayogam-be/internal/repository/memory"
	"sahasrayogam-be/internal/service"
	"sahasrayogam-be/internal/websocket"
	"sahasrayogam-be/pkg/fuzzy"

	pktNats "sahasrayogam-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	FormulationController controller.IFormulationController
	PageController        controller.IPageController

	// Background Services (Exposed for main.go to run)
	CatalogService service.ICatalogService

	// WebSockets
	ViewerHandler *handler.ViewerHandler
	WebSocketHub  *websocket.Hub

	Logger logger.ILogger

	pubSub    *gochannel.GoChannel
	natsPub   *pktNats.Publisher
	rdb       *redis.Client
	collected <-chan *message.Message
	cfg       *config.Config
}

// NewContainer wires the service. db may be nil, in which case the catalog
// serves the bundled snapshot.
func NewContainer(db *gorm.DB, cfg *config.Config) (*Container, error) {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	var formulationRepo contract.FormulationRepository
	if db != nil {
		formulationRepo = implementation.NewFormulationRepository(db)
	}

	matcher, err := fuzzy.New(cfg.Search.Matcher, cfg.Search.Threshold)
	if err != nil {
		return nil, err
	}

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)
	collected, err := pubSub.Subscribe(context.Background(), cfg.Events.CollectionTopic)
	if err != nil {
		return nil, err
	}

	// 3. Infrastructure, all optional
	var eventBus service.EventPublisher
	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL, sysLogger)
		if err != nil {
			sysLogger.Warn("Container", "Failed to connect to NATS Publisher", map[string]interface{}{"error": err})
		} else {
			eventBus = natsPub
		}
	}

	var rdb *redis.Client
	if cfg.App.RedisURL != "" {
		rdb = newRedisClient(cfg.App.RedisURL, sysLogger)
	}

	// 4. Services
	defaultCategory := entity.Category(cfg.Search.DefaultCategory)
	sessionRepo := memory.NewSessionRepository(cfg.Session.TTL)
	publisherService := service.NewPublisherService(cfg.Events.CollectionTopic, pubSub, eventBus, sysLogger)
	catalogService := service.NewCatalogService(formulationRepo, fallback.Formulations, publisherService, sysLogger)
	searchService := service.NewSearchService(matcher)
	formulationService := service.NewFormulationService(catalogService, searchService, defaultCategory)
	viewerService := service.NewViewerService(sessionRepo, catalogService, searchService, defaultCategory)

	// 5. WebSocket Hub
	wsLogger := logger.NewIsolatedLogger(cfg.App.ViewerLogFilePath)
	wsHub := websocket.NewHub(viewerService, rdb, wsLogger)

	return &Container{
		FormulationController: controller.NewFormulationController(formulationService),
		PageController:        controller.NewPageController(viewerService, cfg.Session.TTL),
		CatalogService:        catalogService,
		ViewerHandler:         handler.NewViewerHandler(viewerService, wsHub, wsLogger),
		WebSocketHub:          wsHub,
		Logger:                sysLogger,
		pubSub:                pubSub,
		natsPub:               natsPub,
		rdb:                   rdb,
		collected:             collected,
		cfg:                   cfg,
	}, nil
}

// Start runs the hub and performs the single collection load in the
// background.
func (c *Container) Start(ctx context.Context) {
	go c.WebSocketHub.Run(ctx)
	go c.WebSocketHub.ListenCollectionEvents(c.collected)
	go func() {
		loadCtx, cancel := context.WithTimeout(ctx, c.cfg.Database.LoadTimeout)
		defer cancel()
		c.CatalogService.Load(loadCtx)
	}()
}

func (c *Container) Close() {
	if err := c.pubSub.Close(); err != nil {
		c.Logger.Warn("Container", "Failed to close event bus", map[string]interface{}{"error": err})
	}
	if c.natsPub != nil {
		c.natsPub.Close()
	}
	if c.rdb != nil {
		_ = c.rdb.Close()
	}
	_ = c.Logger.Sync()
}

func newRedisClient(url string, log logger.ILogger) *redis.Client {
	opt, err := redis.ParseURL(url)
	if err != nil {
		log.Warn("Container", "Failed to parse Redis URL, using direct Addr", map[string]interface{}{"error": err})
		opt = &redis.Options{
			Addr: url,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Warn("Container", "Failed to connect to Redis", map[string]interface{}{"error": err})
	}
	return rdb
}
