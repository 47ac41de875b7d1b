package project

import (
	"fmt"
	"strings"
	"time"

	"ticketsystem/internal/shared/biztime"
	"ticketsystem/internal/shared/errors"
)

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

type Project struct {
	id          uint
	name        string
	description string
	createdAt   time.Time
	updatedAt   time.Time
}

func validateFields(name, description string) []errors.FieldError {
	var fields []errors.FieldError
	if strings.TrimSpace(name) == "" {
		fields = append(fields, errors.FieldError{Field: "name", Message: "name is required"})
	} else if len(name) > MaxNameLength {
		fields = append(fields, errors.FieldError{
			Field:   "name",
			Message: fmt.Sprintf("name exceeds maximum length of %d characters", MaxNameLength),
		})
	}
	if len(description) > MaxDescriptionLength {
		fields = append(fields, errors.FieldError{
			Field:   "description",
			Message: fmt.Sprintf("description exceeds maximum length of %d characters", MaxDescriptionLength),
		})
	}
	return fields
}

func NewProject(name, description string) (*Project, error) {
	if fields := validateFields(name, description); len(fields) > 0 {
		return nil, errors.NewFieldValidationError(fields)
	}

	now := biztime.NowUTC()
	return &Project{
		name:        strings.TrimSpace(name),
		description: description,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructProject(
	id uint,
	name string,
	description string,
	createdAt, updatedAt time.Time,
) (*Project, error) {
	if id == 0 {
		return nil, fmt.Errorf("project ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Project{
		id:          id,
		name:        name,
		description: description,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (p *Project) ID() uint {
	return p.id
}

func (p *Project) Name() string {
	return p.name
}

func (p *Project) Description() string {
	return p.description
}

func (p *Project) CreatedAt() time.Time {
	return p.createdAt
}

func (p *Project) UpdatedAt() time.Time {
	return p.updatedAt
}

func (p *Project) SetID(id uint) error {
	if p.id != 0 {
		return fmt.Errorf("project ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("project ID cannot be zero")
	}
	p.id = id
	return nil
}

func (p *Project) UpdateDetails(name, description string) error {
	if fields := validateFields(name, description); len(fields) > 0 {
		return errors.NewFieldValidationError(fields)
	}
	p.name = strings.TrimSpace(name)
	p.description = description
	p.updatedAt = biztime.NowUTC()
	return nil
}
