package service

import (
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/model"
	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/repository"
)

// HistoryService exposes the session conversion ledger
type HistoryService struct {
	history *repository.HistoryRepository
}

// NewHistoryService creates a new HistoryService
func NewHistoryService(history *repository.HistoryRepository) *HistoryService {
	return &HistoryService{history: history}
}

// Recent returns up to n most recent conversions, newest first. Non-positive
// or oversized n falls back to the ledger's retention bound.
func (s *HistoryService) Recent(n int) ([]model.HistoryEntry, error) {
	return s.history.Recent(n)
}
