package queries

import (
	"context"
	"sort"
	"time"

	"padelbook/internal/domain/company"
	"padelbook/internal/infra"
	"padelbook/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrCompanyNotFound = errs.New("company not found")
	ErrNoPostalCode    = errs.New("user has no postal code")
)

type CompanyQueries interface {
	List(ctx context.Context) ([]*CompanyView, error)
	// GetByName resolves one venue with its courts. When a date is given,
	// each court carries the slots already blocked on that day.
	GetByName(ctx context.Context, name string, onDate *time.Time) (*CompanyDetailView, error)
	// ListNearby orders venues by the absolute delta between the user's
	// postal code and the one embedded in the venue address.
	ListNearby(ctx context.Context, userID uuid.UUID) ([]*CompanyView, error)
}

type CompanyReadStore interface {
	FindAll(ctx context.Context) ([]*CompanyView, error)
	FindByName(ctx context.Context, name string, onDate *time.Time) (*CompanyDetailView, error)
}

type UserPostalReader interface {
	PostalCodeByID(ctx context.Context, userID uuid.UUID) (*int32, error)
}

type companyQueriesImpl struct {
	readStore CompanyReadStore
	users     UserPostalReader
}

func NewCompanyQueries(readStore CompanyReadStore, users UserPostalReader) CompanyQueries {
	return &companyQueriesImpl{readStore: readStore, users: users}
}

func (q *companyQueriesImpl) List(ctx context.Context) ([]*CompanyView, error) {
	return q.readStore.FindAll(ctx)
}

func (q *companyQueriesImpl) GetByName(ctx context.Context, name string, onDate *time.Time) (*CompanyDetailView, error) {
	detail, err := q.readStore.FindByName(ctx, name, onDate)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return detail, nil
}

func (q *companyQueriesImpl) ListNearby(ctx context.Context, userID uuid.UUID) ([]*CompanyView, error) {
	cp, err := q.users.PostalCodeByID(ctx, userID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if cp == nil {
		return nil, ErrNoPostalCode
	}

	views, err := q.readStore.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	type ranked struct {
		view     *CompanyView
		distance int32
		known    bool
	}
	rankedViews := make([]ranked, len(views))
	for i, v := range views {
		d, ok := company.Company{Address: v.Address}.Distance(*cp)
		rankedViews[i] = ranked{view: v, distance: d, known: ok}
	}
	// Venues whose address carries no recognizable postal code sort last.
	sort.SliceStable(rankedViews, func(i, j int) bool {
		if rankedViews[i].known != rankedViews[j].known {
			return rankedViews[i].known
		}
		return rankedViews[i].distance < rankedViews[j].distance
	})

	out := make([]*CompanyView, len(rankedViews))
	for i, r := range rankedViews {
		out[i] = r.view
	}
	return out, nil
}
