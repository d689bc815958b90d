package bootstrap

import (
	"context"
	"log"
	"time"

	"panel-review-be/internal/config"
	"panel-review-be/internal/controller"
	"panel-review-be/internal/pkg/logger"
	"panel-review-be/internal/pkg/mailer"
	"panel-review-be/internal/repository/memory"
	"panel-review-be/internal/repository/unitofwork"
	"panel-review-be/internal/service"
	pktNats "panel-review-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const metricRecomputeTopic = "PANEL_METRIC_RECOMPUTE"

type Container struct {
	// Controllers
	PanelController    controller.IPanelController
	QuestionController controller.IQuestionController
	TaggingController  controller.ITaggingController
	VotingController   controller.IVotingController
	MetricController   controller.IMetricController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
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

	// 2. Recompute pipeline
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
		rdb = nil
	}

	// In-memory stores
	undoStacks := memory.NewUndoStackRepository()
	metricCache := memory.NewMetricCache(rdb, time.Duration(cfg.Scoring.MetricCacheTTL)*time.Second)

	// 3. Services
	publisherService := service.NewPublisherService(pubSub, metricRecomputeTopic)

	stageService := service.NewStageService()
	panelService := service.NewPanelService(uowFactory, stageService)
	questionService := service.NewQuestionService(uowFactory, stageService, publisherService, natsPub, sysLogger)
	taggingService := service.NewTaggingService(uowFactory, stageService, undoStacks, publisherService, natsPub, sysLogger)
	votingService := service.NewVotingService(uowFactory, stageService, publisherService, natsPub, sysLogger)
	metricService := service.NewMetricService(uowFactory, metricCache, cfg.Scoring, sysLogger)

	consumerService := service.NewConsumerService(
		pubSub,
		metricRecomputeTopic,
		metricService,
		sysLogger,
	)

	// 3.5 Notification worker
	notifService := service.NewNotificationService(uowFactory, natsSub, emailService, sysLogger)
	if natsSub != nil {
		go notifService.Start()
	}

	// 4. Controllers
	return &Container{
		PanelController:    controller.NewPanelController(panelService),
		QuestionController: controller.NewQuestionController(questionService),
		TaggingController:  controller.NewTaggingController(taggingService),
		VotingController:   controller.NewVotingController(votingService),
		MetricController:   controller.NewMetricController(metricService),

		ConsumerService: consumerService,
		Logger:          sysLogger,
	}
}
