package usecases

import (
	"context"
	"io"
	"time"

	appnotification "ticketsystem/internal/application/notification"
	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/project"
	"ticketsystem/internal/domain/ticket"
	vo "ticketsystem/internal/domain/ticket/valueobjects"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

// UploadPayload carries one submitted file: its declared metadata plus a
// lazy reader. Bytes are only pulled after the whole batch passed
// admission.
type UploadPayload struct {
	FileName    string
	ContentType string
	Size        int64
	Open        func() (io.ReadCloser, error)
}

type CreateTicketCommand struct {
	Title       string
	Description string
	Priority    string
	Type        string
	ProjectID   *uint
	Uploads     []UploadPayload
	Actor       access.Actor
}

type CreateTicketResult struct {
	TicketID    uint
	Status      string
	CreatedAt   time.Time
	Attachments int
}

type CreateTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	projectRepo    project.ProjectRepository
	blobStore      BlobStore
	txManager      TransactionManager
	notifier       appnotification.Notifier
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	projectRepo project.ProjectRepository,
	blobStore BlobStore,
	txManager TransactionManager,
	notifier appnotification.Notifier,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		projectRepo:    projectRepo,
		blobStore:      blobStore,
		txManager:      txManager,
		notifier:       notifier,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case",
		"title", cmd.Title, "creator_id", cmd.Actor.UserID, "uploads", len(cmd.Uploads))

	if !access.CanPerform(cmd.Actor, access.ActionCreateTicket) {
		return nil, errors.NewForbiddenError("not allowed to create tickets")
	}

	var fields []errors.FieldError

	newTicket, err := ticket.NewTicket(
		cmd.Title,
		cmd.Description,
		vo.Priority(cmd.Priority),
		vo.TicketType(cmd.Type),
		cmd.Actor.UserID,
		cmd.ProjectID,
	)
	if err != nil {
		appErr := errors.GetAppError(err)
		if appErr == nil || appErr.Type != errors.ErrorTypeValidation {
			return nil, err
		}
		fields = append(fields, appErr.Fields...)
	}

	if cmd.ProjectID != nil {
		exists, err := uc.projectRepo.Exists(ctx, *cmd.ProjectID)
		if err != nil {
			uc.logger.Errorw("failed to check project existence", "project_id", *cmd.ProjectID, "error", err)
			return nil, err
		}
		if !exists {
			fields = append(fields, errors.FieldError{
				Field:   "project_id",
				Message: "project does not exist",
			})
		}
	}

	if len(fields) > 0 {
		return nil, errors.NewFieldValidationError(fields)
	}

	metas := make([]ticket.UploadMeta, 0, len(cmd.Uploads))
	for _, up := range cmd.Uploads {
		metas = append(metas, ticket.UploadMeta{
			FileName:    up.FileName,
			ContentType: up.ContentType,
			Size:        up.Size,
		})
	}
	admitted, err := ticket.AdmitUploads(metas)
	if err != nil {
		uc.logger.Warnw("attachment batch rejected", "error", err)
		return nil, err
	}

	// Blobs written during the transaction are removed again if it rolls
	// back, so a failed batch leaves no ticket and no orphan files.
	var storedPaths []string
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Save(txCtx, newTicket); err != nil {
			return err
		}
		if len(admitted) == 0 {
			return nil
		}

		attachments := make([]*ticket.Attachment, 0, len(admitted))
		for _, up := range cmd.Uploads {
			if up.Size == 0 {
				continue
			}
			att, err := ticket.NewAttachment(
				newTicket.ID(), up.FileName, up.ContentType, up.Size, cmd.Actor.UserID)
			if err != nil {
				return err
			}

			reader, err := up.Open()
			if err != nil {
				return err
			}
			if err := uc.blobStore.Put(txCtx, att.FilePath(), reader, up.Size, up.ContentType); err != nil {
				reader.Close()
				return err
			}
			reader.Close()
			storedPaths = append(storedPaths, att.FilePath())
			attachments = append(attachments, att)
		}

		return uc.attachmentRepo.SaveBatch(txCtx, attachments)
	})
	if err != nil {
		for _, path := range storedPaths {
			if delErr := uc.blobStore.Delete(ctx, path); delErr != nil {
				uc.logger.Warnw("failed to clean up blob after rollback", "path", path, "error", delErr)
			}
		}
		uc.logger.Errorw("failed to persist ticket", "error", err)
		return nil, err
	}

	uc.notifier.TicketCreated(ctx, ticket.NewTicketCreatedEvent(
		newTicket.ID(),
		newTicket.Title(),
		newTicket.CreatorID(),
		newTicket.Priority().String(),
		newTicket.CreatedAt(),
	))

	uc.logger.Infow("ticket created successfully",
		"ticket_id", newTicket.ID(), "attachments", len(storedPaths))

	return &CreateTicketResult{
		TicketID:    newTicket.ID(),
		Status:      newTicket.Status().String(),
		CreatedAt:   newTicket.CreatedAt(),
		Attachments: len(storedPaths),
	}, nil
}
