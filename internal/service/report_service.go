package service

import (
	"context"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/dto"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/repository"
)

const rankingLimit = 10

// ReportService serves the statistics view: best-selling products, biggest
// clients and the monthly ordered-quantity trend.
type ReportService interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
}

type reportService struct {
	repo repository.ReportRepository
}

func NewReportService(repo repository.ReportRepository) ReportService {
	return &reportService{repo: repo}
}

func (s *reportService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	topProducts, err := s.repo.TopProducts(ctx, rankingLimit)
	if err != nil {
		return nil, err
	}
	topClients, err := s.repo.TopClients(ctx, rankingLimit)
	if err != nil {
		return nil, err
	}
	trend, err := s.repo.MonthlyTrend(ctx)
	if err != nil {
		return nil, err
	}

	resp := &dto.StatsResponse{
		TopProducts:  make([]dto.ProductTotal, 0, len(topProducts)),
		TopClients:   make([]dto.ClientTotal, 0, len(topClients)),
		MonthlyTrend: make([]dto.MonthTotal, 0, len(trend)),
	}
	for _, r := range topProducts {
		resp.TopProducts = append(resp.TopProducts, dto.ProductTotal{ProductName: r.Name, Total: r.Total})
	}
	for _, r := range topClients {
		resp.TopClients = append(resp.TopClients, dto.ClientTotal{ClientName: r.Name, Total: r.Total})
	}
	for _, r := range trend {
		resp.MonthlyTrend = append(resp.MonthlyTrend, dto.MonthTotal{Month: r.Month, Total: r.Total})
	}
	return resp, nil
}
