package notifier

import (
	"context"
	"fmt"
	"sort"
	"time"

	"maritime-maintenance/internal/database/models"
	"maritime-maintenance/internal/expiry"

	"github.com/jackc/pgx/v5/pgxpool"
)

const expiringCandidatesQuery = `
SELECT c.id, c.name, c.serial_number, c.component_type_id,
       c.service_life_months, c.last_inspection_date,
       s.name, s.imo_number
FROM components c
JOIN ships s ON s.id = c.ship_id
WHERE c.status = $1
  AND c.last_inspection_date <= $2`

const subscribersQuery = `
SELECT u.telegram_id, cs.component_type_id
FROM component_subscriptions cs
JOIN users u ON u.id = cs.user_id
WHERE u.telegram_id IS NOT NULL
ORDER BY u.id, cs.component_type_id`

// PgStore reads notifier inputs with plain SQL over a pgx pool.
type PgStore struct {
	pool *pgxpool.Pool
}

var _ Store = (*PgStore)(nil)

// NewPgStore creates a store backed by pool.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

// ExpiringComponents returns operational components whose expiration date is
// within [today, today+windowDays], soonest first.
func (s *PgStore) ExpiringComponents(ctx context.Context, today time.Time, windowDays int) ([]ExpiringComponent, error) {
	today = expiry.Civil(today)
	latest := expiry.LatestInspection(today, windowDays)

	rows, err := s.pool.Query(ctx, expiringCandidatesQuery, models.StatusOperational, latest)
	if err != nil {
		return nil, fmt.Errorf("query expiring components: %w", err)
	}
	defer rows.Close()

	var out []ExpiringComponent
	for rows.Next() {
		var (
			id, typeID     int64
			months         int64
			lastInspection time.Time
			c              ExpiringComponent
		)
		if err := rows.Scan(&id, &c.Name, &c.SerialNumber, &typeID, &months, &lastInspection, &c.ShipName, &c.IMONumber); err != nil {
			return nil, fmt.Errorf("scan expiring component: %w", err)
		}

		status := expiry.Evaluate(today, lastInspection, int(months), windowDays)
		if !status.Expiring {
			continue
		}
		c.ID = uint(id)
		c.ComponentTypeID = uint(typeID)
		c.ExpirationDate = status.ExpirationDate
		c.DaysRemaining = status.DaysRemaining
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expiring components: %w", err)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if !out[i].ExpirationDate.Equal(out[j].ExpirationDate) {
			return out[i].ExpirationDate.Before(out[j].ExpirationDate)
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Subscribers returns every user with a Telegram id and at least one
// subscription, in user id order.
func (s *PgStore) Subscribers(ctx context.Context) ([]Subscriber, error) {
	rows, err := s.pool.Query(ctx, subscribersQuery)
	if err != nil {
		return nil, fmt.Errorf("query subscriptions: %w", err)
	}
	defer rows.Close()

	var out []Subscriber
	index := make(map[int64]int)
	for rows.Next() {
		var telegramID, typeID int64
		if err := rows.Scan(&telegramID, &typeID); err != nil {
			return nil, fmt.Errorf("scan subscription: %w", err)
		}
		i, ok := index[telegramID]
		if !ok {
			i = len(out)
			index[telegramID] = i
			out = append(out, Subscriber{TelegramID: telegramID})
		}
		out[i].TypeIDs = append(out[i].TypeIDs, uint(typeID))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate subscriptions: %w", err)
	}
	return out, nil
}
