package readstore

import (
	"context"
	"time"

	"padelbook/internal/infra"
	"padelbook/internal/infra/db"
	"padelbook/internal/pkg/pgconv"
	"padelbook/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

type CompanyReadStore struct {
	db db.DBTX
}

func NewCompanyReadStore(dbtx db.DBTX) *CompanyReadStore {
	return &CompanyReadStore{db: dbtx}
}

func (r *CompanyReadStore) FindAll(ctx context.Context) ([]*queries.CompanyView, error) {
	const query = `
		SELECT id, name, address, opening_hour, closing_hour
		FROM companies
		ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list companies", err)
	}
	defer rows.Close()

	var views []*queries.CompanyView
	for rows.Next() {
		var v queries.CompanyView
		var opening, closing pgtype.Time
		if err := rows.Scan(&v.ID, &v.Name, &v.Address, &opening, &closing); err != nil {
			return nil, infra.WrapRepoErr("failed to scan company row", err)
		}
		v.OpeningHour = pgconv.TimeOfDayString(opening)
		v.ClosingHour = pgconv.TimeOfDayString(closing)
		views = append(views, &v)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate company rows", err)
	}
	return views, nil
}

func (r *CompanyReadStore) FindByName(ctx context.Context, name string, onDate *time.Time) (*queries.CompanyDetailView, error) {
	const query = `
		SELECT id, name, address, opening_hour, closing_hour
		FROM companies
		WHERE name = $1`

	var detail queries.CompanyDetailView
	var opening, closing pgtype.Time
	err := r.db.QueryRow(ctx, query, name).Scan(&detail.ID, &detail.Name, &detail.Address, &opening, &closing)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("company not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find company by name", err)
	}
	detail.OpeningHour = pgconv.TimeOfDayString(opening)
	detail.ClosingHour = pgconv.TimeOfDayString(closing)

	courts, err := r.courtsByCompany(ctx, detail, onDate)
	if err != nil {
		return nil, err
	}
	detail.Courts = courts
	return &detail, nil
}

func (r *CompanyReadStore) courtsByCompany(ctx context.Context, detail queries.CompanyDetailView, onDate *time.Time) ([]queries.CourtView, error) {
	const query = `
		SELECT id, surface, indoor
		FROM courts
		WHERE company_id = $1
		ORDER BY id`

	rows, err := r.db.Query(ctx, query, detail.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list courts", err)
	}
	defer rows.Close()

	var courts []queries.CourtView
	for rows.Next() {
		var c queries.CourtView
		if err := rows.Scan(&c.ID, &c.Surface, &c.Indoor); err != nil {
			return nil, infra.WrapRepoErr("failed to scan court row", err)
		}
		courts = append(courts, c)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate court rows", err)
	}

	if onDate == nil {
		return courts, nil
	}
	for i := range courts {
		busy, err := r.busySlots(ctx, courts[i], *onDate)
		if err != nil {
			return nil, err
		}
		courts[i].BusySlots = busy
	}
	return courts, nil
}

// busySlots lists the intervals already blocked on a court for one day.
func (r *CompanyReadStore) busySlots(ctx context.Context, court queries.CourtView, day time.Time) ([]queries.BusySlotView, error) {
	const query = `
		SELECT start_time, duration_minutes, status
		FROM bookings
		WHERE court_id = $1
		  AND start_time::date = $2::date
		  AND status = 'pending'
		ORDER BY start_time`

	rows, err := r.db.Query(ctx, query, court.ID, day)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list busy slots", err)
	}
	defer rows.Close()

	var slots []queries.BusySlotView
	for rows.Next() {
		var s queries.BusySlotView
		if err := rows.Scan(&s.StartTime, &s.DurationMinutes, &s.Status); err != nil {
			return nil, infra.WrapRepoErr("failed to scan busy slot row", err)
		}
		slots = append(slots, s)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate busy slot rows", err)
	}
	return slots, nil
}
