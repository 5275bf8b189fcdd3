package bootstrap

import (
	"log"
	"time"

	"ai-legaldoc-be/internal/config"
	"ai-legaldoc-be/internal/controller"
	"ai-legaldoc-be/internal/handler"
	"ai-legaldoc-be/internal/pkg/logger"
	"ai-legaldoc-be/internal/pkg/mailer"
	"ai-legaldoc-be/internal/repository/memory"
	"ai-legaldoc-be/internal/service"
	"ai-legaldoc-be/internal/websocket"
	"ai-legaldoc-be/pkg/engine/analysis"
	"ai-legaldoc-be/pkg/engine/qa"
	"ai-legaldoc-be/pkg/report"
	"ai-legaldoc-be/pkg/upload"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	DocumentController controller.IDocumentController
	ChatController     controller.IChatController
	ReportController   controller.IReportController

	// Background Services (Exposed for main.go to run)
	EventRelayService service.IEventRelayService

	// WebSockets
	SessionEventsHandler *handler.SessionEventsHandler
	WebSocketHub         *websocket.Hub
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. Engine Providers
	engineTimeout := time.Duration(cfg.Engine.TimeoutSeconds) * time.Second
	analysisProvider := analysis.NewHTTPClient(cfg.Engine.AnalysisURL, engineTimeout)
	qaProvider := qa.NewHTTPClient(cfg.Engine.QAURL, engineTimeout)

	// Report delivery strategy based on config
	var delivery report.Delivery
	if cfg.Report.Delivery == "smtp" {
		delivery = report.NewSMTPDelivery(emailService)
		log.Printf("[INFO] Using Report Delivery: SMTP (%s)", cfg.SMTP.Host)
	} else {
		delivery = report.NewHTTPDelivery(cfg.Engine.DeliveryURL, engineTimeout)
		log.Printf("[INFO] Using Report Delivery: HTTP (%s)", cfg.Engine.DeliveryURL)
	}

	// 4. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 5. Submission Gate
	gate := upload.NewGate(cfg.Upload.AcceptedType, cfg.Upload.MaxSizeMB)

	// 6. Services
	documentService := service.NewDocumentService(gate, analysisProvider, sessionRepo, pubSub, sysLogger)
	chatService := service.NewChatService(qaProvider, sessionRepo, pubSub, cfg.Chat, sysLogger)
	reportService := service.NewReportService(delivery, sessionRepo, pubSub, sysLogger)

	// 7. WebSocket Hub + Event Relay
	hub := websocket.NewHub(sysLogger)
	go hub.Run()

	relayService := service.NewEventRelayService(pubSub, hub, sysLogger)

	// 8. Controllers
	return &Container{
		DocumentController: controller.NewDocumentController(documentService),
		ChatController:     controller.NewChatController(chatService),
		ReportController:   controller.NewReportController(reportService),

		EventRelayService: relayService,

		SessionEventsHandler: handler.NewSessionEventsHandler(hub, sysLogger),
		WebSocketHub:         hub,
	}
}
