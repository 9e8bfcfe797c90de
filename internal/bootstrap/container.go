package bootstrap

import (
	"context"
	"log"

	"daeda-site-be/internal/config"
	"daeda-site-be/internal/controller"
	"daeda-site-be/internal/handler"
	"daeda-site-be/internal/pkg/logger"
	"daeda-site-be/internal/pkg/mailer"
	"daeda-site-be/internal/repository/implementation"
	"daeda-site-be/internal/repository/memory"
	"daeda-site-be/internal/repository/unitofwork"
	"daeda-site-be/internal/service"
	"daeda-site-be/internal/websocket"
	"daeda-site-be/pkg/knowledge"
	pktNats "daeda-site-be/pkg/nats"
	"daeda-site-be/pkg/research"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const contactSubmittedTopic = "CONTACT_SUBMITTED"

type Container struct {
	Logger logger.ILogger

	ChatController    controller.IChatController
	ContactController controller.IContactController
	AuthController    controller.IAuthController
	AdminController   controller.IAdminController

	NotificationHandler *handler.NotificationHandler
	WebSocketHub        *websocket.Hub

	ConsumerService service.IConsumerService
}

func NewContainer(cfg *config.Config, db *gorm.DB) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus (in-process)
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	// NATS
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	}

	// Redis
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	// WebSocket Hub
	wsLogger := logger.NewIsolatedLogger("logs/notification.log")
	wsHub := websocket.NewHub(rdb, wsLogger)
	go wsHub.Run()

	// In-memory conversation context cache
	contextCache := memory.NewContextCache()

	// 3. Services
	knowledgeService := knowledge.NewService(implementation.NewKnowledgeRepository(db), sysLogger)
	braveClient := research.NewBraveClient(cfg.Keys.BraveSearch)
	researcher := research.NewOrchestrator(knowledgeService, braveClient, sysLogger)

	publisherService := service.NewPublisherService(contactSubmittedTopic, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		contactSubmittedTopic,
		emailService,
		cfg.Admin.NotifyEmail,
	)

	chatService := service.NewChatService(
		uowFactory,
		contextCache,
		researcher,
		natsPub,
		cfg.Keys.GoogleGemini,
		sysLogger,
	)
	contactService := service.NewContactService(uowFactory, publisherService, sysLogger)
	authService := service.NewAuthService(cfg.Admin)
	adminService := service.NewAdminService(uowFactory, sysLogger)

	// Lead notification worker
	notifService := service.NewNotificationService(
		natsSub,
		wsHub,
		emailService,
		cfg.Admin.NotifyEmail,
		wsLogger,
	)
	if natsSub != nil {
		go notifService.Start()
	}

	notifHandler := handler.NewNotificationHandler(wsHub, wsLogger)

	// 4. Controllers
	return &Container{
		Logger: sysLogger,

		ChatController:    controller.NewChatController(chatService),
		ContactController: controller.NewContactController(contactService),
		AuthController:    controller.NewAuthController(authService),
		AdminController:   controller.NewAdminController(adminService),

		NotificationHandler: notifHandler,
		WebSocketHub:        wsHub,

		ConsumerService: consumerService,
	}
}
