package usecases

import (
	"context"
	"io"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/ticket"
	"ticketsystem/internal/shared/errors"
	"ticketsystem/internal/shared/logger"
)

type DownloadAttachmentQuery struct {
	TicketID     uint
	AttachmentID uint
	Actor        access.Actor
}

// DownloadAttachmentResult carries the blob stream plus the metadata the
// transport needs to build the response. The caller owns Content and must
// close it.
type DownloadAttachmentResult struct {
	FileName    string
	ContentType string
	Size        int64
	Content     io.ReadCloser
}

type DownloadAttachmentUseCase struct {
	ticketRepo     ticket.TicketRepository
	attachmentRepo ticket.AttachmentRepository
	blobStore      BlobStore
	logger         logger.Interface
}

func NewDownloadAttachmentUseCase(
	ticketRepo ticket.TicketRepository,
	attachmentRepo ticket.AttachmentRepository,
	blobStore BlobStore,
	logger logger.Interface,
) *DownloadAttachmentUseCase {
	return &DownloadAttachmentUseCase{
		ticketRepo:     ticketRepo,
		attachmentRepo: attachmentRepo,
		blobStore:      blobStore,
		logger:         logger,
	}
}

func (uc *DownloadAttachmentUseCase) Execute(ctx context.Context, query DownloadAttachmentQuery) (*DownloadAttachmentResult, error) {
	existing, err := uc.ticketRepo.GetByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	if !access.CanViewTicket(query.Actor, existing.CreatorID(), existing.AssigneeID()) {
		return nil, errors.NewForbiddenError("not allowed to access this ticket")
	}

	attachment, err := uc.attachmentRepo.GetByID(ctx, query.AttachmentID)
	if err != nil {
		return nil, err
	}
	// An attachment id from another ticket must not leak through this route.
	if attachment == nil || attachment.TicketID() != query.TicketID {
		return nil, errors.NewNotFoundError("attachment not found")
	}

	content, err := uc.blobStore.Get(ctx, attachment.FilePath())
	if err != nil {
		uc.logger.Errorw("failed to open attachment blob",
			"attachment_id", attachment.ID(), "path", attachment.FilePath(), "error", err)
		return nil, errors.NewInternalError("failed to read attachment")
	}

	return &DownloadAttachmentResult{
		FileName:    attachment.FileName(),
		ContentType: attachment.ContentType(),
		Size:        attachment.Size(),
		Content:     content,
	}, nil
}
