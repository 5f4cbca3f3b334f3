package service

import (
	"database/sql"

	"github.com/qyknom-fikzYx-5fanwa/conversor-monedas-web/internal/database"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{
		db: db,
	}
}

// CheckHealth checks the health of the session store
func (s *SystemService) CheckHealth() error {
	return database.HealthCheck(s.db)
}
