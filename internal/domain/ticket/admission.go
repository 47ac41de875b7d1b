package ticket

import (
	"fmt"
	"path/filepath"
	"strings"

	"ticketsystem/internal/shared/errors"
)

// UploadMeta describes a submitted file before any byte is persisted.
type UploadMeta struct {
	FileName    string
	ContentType string
	Size        int64
}

// AdmitUploads applies the admission policy to a whole upload batch.
// Zero-length files are dropped silently. Every violation across the batch
// is collected before reporting, and a single violation rejects the whole
// batch. The returned slice holds only the admitted files, in submission
// order.
func AdmitUploads(uploads []UploadMeta) ([]UploadMeta, error) {
	var (
		admitted    []UploadMeta
		fields      []errors.FieldError
		unsupported bool
		oversized   bool
	)

	for _, u := range uploads {
		if u.Size == 0 {
			continue
		}
		ext := strings.ToLower(filepath.Ext(u.FileName))
		if !allowedAttachmentExtensions[ext] {
			unsupported = true
			fields = append(fields, errors.FieldError{
				Field:   u.FileName,
				Message: fmt.Sprintf("file type %q is not allowed", ext),
			})
			continue
		}
		if u.Size > MaxAttachmentSize {
			oversized = true
			fields = append(fields, errors.FieldError{
				Field:   u.FileName,
				Message: fmt.Sprintf("file %q exceeds the 10 MiB limit", u.FileName),
			})
			continue
		}
		admitted = append(admitted, u)
	}

	if len(fields) > 0 {
		// Size violations take the payload-too-large classification unless
		// the batch also carries a type violation.
		if oversized && !unsupported {
			appErr := errors.NewTooLargeError("attachment batch rejected")
			appErr.Fields = fields
			return nil, appErr
		}
		appErr := errors.NewUnsupportedMediaError("attachment batch rejected")
		appErr.Fields = fields
		return nil, appErr
	}

	return admitted, nil
}
