package http

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appnotification "ticketsystem/internal/application/notification"
	notificationUsecases "ticketsystem/internal/application/notification/usecases"
	projectUsecases "ticketsystem/internal/application/project/usecases"
	reportUsecases "ticketsystem/internal/application/report/usecases"
	ticketUsecases "ticketsystem/internal/application/ticket/usecases"
	"ticketsystem/internal/infrastructure/auth"
	"ticketsystem/internal/infrastructure/config"
	"ticketsystem/internal/infrastructure/email"
	"ticketsystem/internal/infrastructure/permission"
	"ticketsystem/internal/infrastructure/ratelimit"
	"ticketsystem/internal/infrastructure/repository"
	"ticketsystem/internal/infrastructure/storage"
	adminhandlers "ticketsystem/internal/interfaces/http/handlers/admin"
	notificationhandlers "ticketsystem/internal/interfaces/http/handlers/notification"
	projecthandlers "ticketsystem/internal/interfaces/http/handlers/project"
	tickethandlers "ticketsystem/internal/interfaces/http/handlers/ticket"
	"ticketsystem/internal/interfaces/http/middleware"
	sharedconfig "ticketsystem/internal/shared/config"
	"ticketsystem/internal/shared/db"
	"ticketsystem/internal/shared/logger"
	"ticketsystem/internal/shared/services/markdown"
)

// Container wires repositories, use cases, handlers, and middleware from an
// open database handle and the loaded configuration.
type Container struct {
	TicketHandler        *tickethandlers.TicketHandler
	ProjectHandler       *projecthandlers.ProjectHandler
	NotificationHandler  *notificationhandlers.NotificationHandler
	DashboardHandler     *adminhandlers.DashboardHandler
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimiter          ratelimit.RateLimiter
}

func NewContainer(gdb *gorm.DB, redisClient *redis.Client, cfg *config.Config, log logger.Interface) (*Container, error) {
	ticketRepo := repository.NewTicketRepository(gdb)
	commentRepo := repository.NewCommentRepository(gdb)
	attachmentRepo := repository.NewAttachmentRepository(gdb)
	projectRepo := repository.NewProjectRepository(gdb)
	notificationRepo := repository.NewNotificationRepository(gdb)
	directory := repository.NewUserDirectory(gdb)

	txManager := db.NewTransactionManager(gdb)
	markdownSvc := markdown.NewMarkdownService()

	blobStore, err := newBlobStore(&cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize blob store: %w", err)
	}

	var sink appnotification.MessageSink
	if cfg.Email.Enabled {
		sink = email.NewSMTPSink(&cfg.Email, directory)
	} else {
		sink = email.NewNoopSink()
	}
	notifier := appnotification.NewDispatchNotifier(notificationRepo, directory, sink, log)

	enforcer, err := permission.NewEnforcer(gdb, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize permission enforcer: %w", err)
	}

	jwtService := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)

	ticketHandler := tickethandlers.NewTicketHandler(
		ticketUsecases.NewCreateTicketUseCase(ticketRepo, attachmentRepo, projectRepo, blobStore, txManager, notifier, log),
		ticketUsecases.NewGetTicketUseCase(ticketRepo, commentRepo, attachmentRepo, markdownSvc, log),
		ticketUsecases.NewListTicketsUseCase(ticketRepo, log),
		ticketUsecases.NewUpdateTicketUseCase(ticketRepo, projectRepo, directory, notifier, log),
		ticketUsecases.NewAssignTicketUseCase(ticketRepo, directory, notifier, log),
		ticketUsecases.NewCloseTicketUseCase(ticketRepo, log),
		ticketUsecases.NewReopenTicketUseCase(ticketRepo, log),
		ticketUsecases.NewDeleteTicketUseCase(ticketRepo, commentRepo, attachmentRepo, blobStore, txManager, log),
		ticketUsecases.NewAddCommentUseCase(ticketRepo, commentRepo, notifier, log),
		ticketUsecases.NewDownloadAttachmentUseCase(ticketRepo, attachmentRepo, blobStore, log),
		log,
	)

	projectHandler := projecthandlers.NewProjectHandler(
		projectUsecases.NewCreateProjectUseCase(projectRepo, log),
		projectUsecases.NewUpdateProjectUseCase(projectRepo, log),
		projectUsecases.NewDeleteProjectUseCase(projectRepo, ticketRepo, log),
		projectUsecases.NewGetProjectUseCase(projectRepo, ticketRepo, log),
		projectUsecases.NewListProjectsUseCase(projectRepo, ticketRepo, log),
		log,
	)

	notificationHandler := notificationhandlers.NewNotificationHandler(
		notificationUsecases.NewListNotificationsUseCase(notificationRepo, log),
		notificationUsecases.NewMarkAllReadUseCase(notificationRepo, log),
		notificationUsecases.NewGetUnreadCountUseCase(notificationRepo, log),
		log,
	)

	dashboardHandler := adminhandlers.NewDashboardHandler(
		reportUsecases.NewWeeklyReportUseCase(ticketRepo, log),
		log,
	)

	return &Container{
		TicketHandler:        ticketHandler,
		ProjectHandler:       projectHandler,
		NotificationHandler:  notificationHandler,
		DashboardHandler:     dashboardHandler,
		AuthMiddleware:       middleware.NewAuthMiddleware(jwtService, log),
		PermissionMiddleware: middleware.NewPermissionMiddleware(enforcer, log),
		RateLimiter:          ratelimit.NewRedisRateLimiter(redisClient, cfg.RateLimit.RequestsPerMinute),
	}, nil
}

func newBlobStore(cfg *sharedconfig.StorageConfig) (ticketUsecases.BlobStore, error) {
	switch cfg.Backend {
	case "minio":
		store, err := storage.NewMinioBlobStore(cfg)
		if err != nil {
			return nil, err
		}
		if err := store.EnsureBucket(context.Background()); err != nil {
			return nil, err
		}
		return store, nil
	default:
		return storage.NewLocalBlobStore(cfg.LocalPath)
	}
}
