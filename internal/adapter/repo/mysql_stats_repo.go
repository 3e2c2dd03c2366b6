package repo

import (
	"context"
	"database/sql"
	"time"

	domain "github.com/Benian44/ly-confection/internal/entity"
	"github.com/Benian44/ly-confection/internal/usecase"
)

type MySQLStatsRepo struct{ db *sql.DB }

func NewMySQLStatsRepo(db *sql.DB) *MySQLStatsRepo { return &MySQLStatsRepo{db: db} }

// Stats aggregates in the database: order count, lifetime revenue and
// revenue bucketed by month, oldest month first.
func (r *MySQLStatsRepo) Stats(ctx context.Context) (domain.Stats, error) {
	var st domain.Stats

	row := r.db.QueryRowContext(ctx, `SELECT COUNT(*), COALESCE(SUM(total_amount),0) FROM orders`)
	if err := row.Scan(&st.TotalOrders, &st.TotalRevenue); err != nil {
		return domain.Stats{}, err
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT MONTH(created_at), SUM(total_amount)
FROM orders
GROUP BY DATE_FORMAT(created_at,'%Y-%m'), MONTH(created_at)
ORDER BY DATE_FORMAT(created_at,'%Y-%m')`)
	if err != nil {
		return domain.Stats{}, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			mon int
			b   domain.MonthBucket
		)
		if err := rows.Scan(&mon, &b.Value); err != nil {
			return domain.Stats{}, err
		}
		b.Name = monthLabel(time.Month(mon))
		st.MonthlyRevenue = append(st.MonthlyRevenue, b)
	}
	return st, rows.Err()
}

var _ usecase.StatsRepo = (*MySQLStatsRepo)(nil)
