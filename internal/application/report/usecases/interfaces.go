package usecases

import (
	"context"

	"ticketsystem/internal/application/report/dto"
)

type WeeklyReportExecutor interface {
	Execute(ctx context.Context, query WeeklyReportQuery) (*dto.WeeklyReportDTO, error)
}
