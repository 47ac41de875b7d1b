package ticket

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"ticketsystem/internal/shared/biztime"
)

// MaxAttachmentSize is the per-file upload limit.
const MaxAttachmentSize = 10 << 20 // 10 MiB

var allowedAttachmentExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".pdf":  true,
	".txt":  true,
	".log":  true,
}

// Attachment is a file stored against a ticket. The stored name is
// generated, never the client-supplied one.
type Attachment struct {
	id          uint
	ticketID    uint
	fileName    string
	storedName  string
	filePath    string
	contentType string
	size        int64
	uploaderID  uint
	uploadedAt  time.Time
}

func NewAttachment(
	ticketID uint,
	fileName string,
	contentType string,
	size int64,
	uploaderID uint,
) (*Attachment, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if fileName == "" {
		return nil, fmt.Errorf("file name is required")
	}
	if uploaderID == 0 {
		return nil, fmt.Errorf("uploader ID is required")
	}

	stored := NewStoredName(fileName)
	return &Attachment{
		ticketID:    ticketID,
		fileName:    fileName,
		storedName:  stored,
		filePath:    AttachmentPath(ticketID, stored),
		contentType: contentType,
		size:        size,
		uploaderID:  uploaderID,
		uploadedAt:  biztime.NowUTC(),
	}, nil
}

func ReconstructAttachment(
	id uint,
	ticketID uint,
	fileName string,
	storedName string,
	filePath string,
	contentType string,
	size int64,
	uploaderID uint,
	uploadedAt time.Time,
) (*Attachment, error) {
	if id == 0 {
		return nil, fmt.Errorf("attachment ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Attachment{
		id:          id,
		ticketID:    ticketID,
		fileName:    fileName,
		storedName:  storedName,
		filePath:    filePath,
		contentType: contentType,
		size:        size,
		uploaderID:  uploaderID,
		uploadedAt:  uploadedAt,
	}, nil
}

func (a *Attachment) ID() uint {
	return a.id
}

func (a *Attachment) TicketID() uint {
	return a.ticketID
}

func (a *Attachment) FileName() string {
	return a.fileName
}

func (a *Attachment) StoredName() string {
	return a.storedName
}

func (a *Attachment) FilePath() string {
	return a.filePath
}

func (a *Attachment) ContentType() string {
	return a.contentType
}

func (a *Attachment) Size() int64 {
	return a.size
}

func (a *Attachment) UploaderID() uint {
	return a.uploaderID
}

func (a *Attachment) UploadedAt() time.Time {
	return a.uploadedAt
}

func (a *Attachment) SetID(id uint) error {
	if a.id != 0 {
		return fmt.Errorf("attachment ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("attachment ID cannot be zero")
	}
	a.id = id
	return nil
}

// NewStoredName generates a collision-free storage name preserving the
// original extension.
func NewStoredName(fileName string) string {
	return uuid.NewString() + strings.ToLower(filepath.Ext(fileName))
}

// AttachmentPath returns the logical blob path for a ticket attachment.
func AttachmentPath(ticketID uint, storedName string) string {
	return fmt.Sprintf("tickets/%d/%s", ticketID, storedName)
}

// IsAllowedAttachmentExtension reports whether the file extension is
// accepted, matched case-insensitively.
func IsAllowedAttachmentExtension(fileName string) bool {
	return allowedAttachmentExtensions[strings.ToLower(filepath.Ext(fileName))]
}
