package repository

import (
	"context"
	"database/sql"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"coverage-planner/internal/planner/models"

	"github.com/google/uuid"
)

// ============================================================
// SQLite Report Store
// ============================================================

//go:embed migrations/*.sql
var migrations embed.FS

var ErrNotFound = errors.New("report not found")

type Repository struct {
	db  *sql.DB
	now func() time.Time
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db, now: time.Now}
}

// Init применяет встроенные миграции в порядке имен файлов
func (r *Repository) Init(ctx context.Context) error {
	if err := r.runMigrations(ctx); err != nil {
		return fmt.Errorf("migrations: %w", err)
	}
	return nil
}

// Save сохраняет анализ под новым id отчета
func (r *Repository) Save(ctx context.Context, name string, analysis *models.Analysis) (*models.Report, error) {
	if analysis == nil {
		return nil, fmt.Errorf("save report: analysis is nil")
	}

	data, err := json.Marshal(analysis)
	if err != nil {
		return nil, fmt.Errorf("encode analysis: %w", err)
	}

	report := &models.Report{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: r.now().UTC().Format(time.RFC3339Nano),
		Analysis:  *analysis,
	}

	_, err = r.db.ExecContext(ctx, `
        INSERT INTO reports (id, name, total_coverage, blind_spots, analysis, created_at)
        VALUES (?, ?, ?, ?, ?, ?)
    `, report.ID, report.Name, analysis.Stats.TotalCoverage, analysis.Stats.BlindSpotCount, string(data), report.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert report: %w", err)
	}
	return report, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*models.Report, error) {
	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, analysis, created_at
        FROM reports
        WHERE id = ?
    `, id)

	var rep models.Report
	var data string
	if err := row.Scan(&rep.ID, &rep.Name, &data, &rep.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := json.Unmarshal([]byte(data), &rep.Analysis); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", id, err)
	}
	return &rep, nil
}

// List возвращает краткие сведения об отчетах, новые первыми
func (r *Repository) List(ctx context.Context) ([]models.ReportSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
        SELECT id, name, created_at, total_coverage, blind_spots
        FROM reports
        ORDER BY created_at DESC, rowid DESC
    `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []models.ReportSummary{}
	for rows.Next() {
		var s models.ReportSummary
		if err := rows.Scan(&s.ID, &s.Name, &s.CreatedAt, &s.TotalCoverage, &s.BlindSpots); err != nil {
			return nil, err
		}
		summaries = append(summaries, s)
	}
	return summaries, rows.Err()
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// ============================================================
// Migrations
// ============================================================

func (r *Repository) runMigrations(ctx context.Context) error {
	entries, err := migrations.ReadDir("migrations")
	if err != nil {
		return fmt.Errorf("read migrations: %w", err)
	}

	for _, entry := range entries {
		data, err := migrations.ReadFile("migrations/" + entry.Name())
		if err != nil {
			return fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}
		if _, err := r.db.ExecContext(ctx, string(data)); err != nil {
			return fmt.Errorf("apply migration %s: %w", entry.Name(), err)
		}
	}
	return nil
}

// OpenSQLite открывает базу sqlite по dbPath, создавая директорию
func OpenSQLite(dbPath string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}

	dsn := fmt.Sprintf("file:%s?cache=shared&mode=rwc&_pragma=busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	return db, nil
}
