package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"ticketsystem/internal/domain/access"
	"ticketsystem/internal/domain/ticket"
	vo "ticketsystem/internal/domain/ticket/valueobjects"
	"ticketsystem/internal/infrastructure/persistence/mappers"
	"ticketsystem/internal/infrastructure/persistence/models"
	"ticketsystem/internal/shared/db"
	"ticketsystem/internal/shared/errors"
)

// allowedTicketOrderByFields defines the whitelist of allowed ORDER BY fields
// to prevent SQL injection attacks.
var allowedTicketOrderByFields = map[string]bool{
	"id":          true,
	"title":       true,
	"status":      true,
	"priority":    true,
	"type":        true,
	"creator_id":  true,
	"assignee_id": true,
	"project_id":  true,
	"created_at":  true,
	"updated_at":  true,
}

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(gdb *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     gdb,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	return t.SetID(model.ID)
}

// Update writes the aggregate back guarded by the version it was loaded
// with: the row must still carry that version, otherwise a concurrent
// writer got there first. An aggregate whose state never changed skips
// the write entirely, so no-op transitions succeed.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if t.Version() == t.BaseVersion() {
		return nil
	}

	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND version = ?", model.ID, t.BaseVersion()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewConflictError("ticket was modified concurrently")
	}

	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.TicketModel{}, ticketID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) GetByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, ticketID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) List(ctx context.Context, filter ticket.TicketFilter) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := r.applyScope(tx.Model(&models.TicketModel{}), filter.Scope)

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Type != nil {
		query = query.Where("type = ?", filter.Type.String())
	}
	if filter.ProjectID != nil {
		query = query.Where("project_id = ?", *filter.ProjectID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	query = query.Order(r.orderClause(filter.SortBy, filter.SortOrder))
	if filter.PageSize > 0 {
		query = query.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	var ticketModels []*models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, 0, len(ticketModels))
	for _, model := range ticketModels {
		t, err := r.mapper.ToDomain(model)
		if err != nil {
			return nil, 0, err
		}
		tickets = append(tickets, t)
	}

	return tickets, total, nil
}

func (r *TicketRepository) CountByProject(ctx context.Context, scope access.TicketScope) (map[uint]int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		ProjectID uint
		Count     int64
	}
	query := r.applyScope(tx.Model(&models.TicketModel{}), scope).
		Select("project_id, COUNT(*) as count").
		Where("project_id IS NOT NULL").
		Group("project_id")

	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to count tickets by project: %w", err)
	}

	counts := make(map[uint]int64, len(rows))
	for _, row := range rows {
		counts[row.ProjectID] = row.Count
	}
	return counts, nil
}

func (r *TicketRepository) CountReferencingProject(ctx context.Context, projectID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.TicketModel{}).
		Where("project_id = ?", projectID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count referencing tickets: %w", err)
	}
	return count, nil
}

func (r *TicketRepository) Totals(ctx context.Context) (ticket.Totals, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var totals ticket.Totals
	if err := tx.Model(&models.TicketModel{}).Count(&totals.Total).Error; err != nil {
		return ticket.Totals{}, fmt.Errorf("failed to count tickets: %w", err)
	}
	if err := tx.Model(&models.TicketModel{}).
		Where("status = ?", vo.StatusOpen.String()).
		Count(&totals.Open).Error; err != nil {
		return ticket.Totals{}, fmt.Errorf("failed to count open tickets: %w", err)
	}
	totals.Closed = totals.Total - totals.Open
	return totals, nil
}

func (r *TicketRepository) ListCreatedBetween(ctx context.Context, from, to time.Time) ([]ticket.CreationFact, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var rows []struct {
		CreatedAt int64
		Priority  string
	}
	if err := tx.Model(&models.TicketModel{}).
		Select("created_at, priority").
		Where("created_at >= ? AND created_at < ?", from.UnixMilli(), to.UnixMilli()).
		Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list creation facts: %w", err)
	}

	facts := make([]ticket.CreationFact, 0, len(rows))
	for _, row := range rows {
		facts = append(facts, ticket.CreationFact{
			CreatedAt: time.UnixMilli(row.CreatedAt).UTC(),
			Priority:  vo.Priority(row.Priority),
		})
	}
	return facts, nil
}

func (r *TicketRepository) applyScope(query *gorm.DB, scope access.TicketScope) *gorm.DB {
	switch {
	case scope.All:
		return query
	case scope.CreatorOrAssigneeID != nil:
		return query.Where("creator_id = ? OR assignee_id = ?",
			*scope.CreatorOrAssigneeID, *scope.CreatorOrAssigneeID)
	case scope.CreatorID != nil:
		return query.Where("creator_id = ?", *scope.CreatorID)
	default:
		// An empty scope matches nothing.
		return query.Where("1 = 0")
	}
}

func (r *TicketRepository) orderClause(sortBy, sortOrder string) string {
	if !allowedTicketOrderByFields[sortBy] {
		sortBy = "created_at"
	}
	if !strings.EqualFold(sortOrder, "asc") {
		sortOrder = "desc"
	}
	return fmt.Sprintf("%s %s", sortBy, strings.ToLower(sortOrder))
}
