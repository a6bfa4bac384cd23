package queries

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/core/domain/services"
	"kitchen/internal/pkg/guard"
)

var (
	ErrGetHistoryQueryIsNotConstructed = errors.New(
		"GetHistoryQuery must be created via NewGetHistoryQuery constructor",
	)
)

// GetHistoryQuery requests the append-only cooking history feed for a time
// window, optionally scoped to one staff member. With no explicit window the
// handler defaults to the current calendar day, mirroring the statistics
// query.
type GetHistoryQuery struct { //nolint:recvcheck //using for validation
	from    *time.Time
	to      *time.Time
	staffID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetHistoryQuery creates a history feed query. Window bounds must be
// given together or not at all, and the end must be after the start.
func NewGetHistoryQuery(from, to *time.Time, staffID *kernel.UUID) (GetHistoryQuery, error) {
	query := GetHistoryQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setWindow(from, to),
		query.setStaffID(staffID),
	); err != nil {
		return GetHistoryQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
func (q GetHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetHistoryQueryIsNotConstructed)
}

// Window resolves the feed window, defaulting to the calendar day containing
// now when no bounds were given.
func (q GetHistoryQuery) Window(now time.Time) (services.Window, error) {
	if q.from == nil || q.to == nil {
		return services.DayWindow(now), nil
	}
	return services.NewWindow(*q.from, *q.to)
}

// StaffID returns the optional staff scope.
func (q GetHistoryQuery) StaffID() *kernel.UUID {
	if q.staffID == nil {
		return nil
	}
	staffID := *q.staffID
	return &staffID
}

func (q *GetHistoryQuery) setWindow(from, to *time.Time) error {
	if from == nil && to == nil {
		return nil
	}
	if from == nil || to == nil {
		return errors.New("window bounds must be given together")
	}
	if _, err := services.NewWindow(*from, *to); err != nil {
		return err
	}
	start := *from
	end := *to
	q.from = &start
	q.to = &end
	return nil
}

func (q *GetHistoryQuery) setStaffID(staffID *kernel.UUID) error {
	if staffID == nil {
		return nil
	}
	if err := staffID.Validate(); err != nil {
		return err
	}
	scoped := *staffID
	q.staffID = &scoped
	return nil
}

// HistoryRecordResponse is one immutable cooking history entry in the feed.
type HistoryRecordResponse struct {
	ID                   kernel.UUID
	OrderID              kernel.UUID
	OrderNumber          string
	ItemSummary          string
	StaffID              *kernel.UUID
	EstimatedPrepMinutes int
	ActualPrepMinutes    int
	StartedAt            time.Time
	CompletedAt          time.Time
	WithinEstimate       bool
}
