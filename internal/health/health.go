package health

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"gstbill-backend/internal/timeutil"
)

// Checker answers readiness probes. Ready means the database responds
// and the billing schema has been migrated.
type Checker struct {
	db *pgxpool.Pool
}

type Status struct {
	Status    string   `json:"status"`
	CheckedAt string   `json:"checked_at"`
	Database  DBStatus `json:"database"`
}

type DBStatus struct {
	Status            string `json:"status"`
	ResponseTimeMs    int64  `json:"response_time_ms"`
	AppliedMigrations int    `json:"applied_migrations"`
}

func NewHealthChecker(db *pgxpool.Pool) *Checker {
	return &Checker{db: db}
}

// Check pings the database and counts applied migrations. An empty
// schema_migrations table means the billing tables are not ready yet.
func (c *Checker) Check(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	dbStatus := DBStatus{Status: "healthy"}

	start := time.Now()
	err := c.db.Ping(ctx)
	dbStatus.ResponseTimeMs = time.Since(start).Milliseconds()
	if err != nil {
		dbStatus.Status = "unhealthy"
	} else {
		var applied int
		row := c.db.QueryRow(ctx, "SELECT COUNT(*) FROM schema_migrations")
		if err := row.Scan(&applied); err != nil || applied == 0 {
			dbStatus.Status = "unmigrated"
		}
		dbStatus.AppliedMigrations = applied
	}

	status := "healthy"
	if dbStatus.Status != "healthy" {
		status = "unhealthy"
	}

	return Status{
		Status:    status,
		CheckedAt: timeutil.FormatIST(timeutil.Now(), time.RFC3339),
		Database:  dbStatus,
	}
}
