package http

import (
	"time"

	"kitchen/internal/core/application/usecases/queries"
	"kitchen/internal/core/domain/model/order"
	"kitchen/internal/core/domain/services"
)

// ErrorResponse is the JSON error body for all failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// LineItemRequest is one dish in an order creation request.
type LineItemRequest struct {
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	Notes     string   `json:"notes,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	OrderNumber          string            `json:"order_number"`
	Origin               string            `json:"origin"`
	TableRef             string            `json:"table_ref,omitempty"`
	Items                []LineItemRequest `json:"items"`
	Priority             string            `json:"priority,omitempty"`
	EstimatedPrepMinutes int               `json:"estimated_prep_minutes"`
}

// CreateOrderResponse carries the identifier assigned to the new order.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// TransitionRequest is the body of POST /api/v1/orders/:id/transition.
type TransitionRequest struct {
	Target  string `json:"target"`
	StaffID string `json:"staff_id,omitempty"`
}

// LineItemResponse is one dish in an order response.
type LineItemResponse struct {
	Name      string   `json:"name"`
	Quantity  int      `json:"quantity"`
	Notes     string   `json:"notes,omitempty"`
	Modifiers []string `json:"modifiers,omitempty"`
}

// TimingResponse is the transient timing evaluation of one order.
type TimingResponse struct {
	OrderID          string `json:"order_id"`
	Status           string `json:"status"`
	ElapsedMinutes   int    `json:"elapsed_minutes"`
	RemainingMinutes int    `json:"remaining_minutes"`
	IsOverdue        bool   `json:"is_overdue"`
	IsLate           bool   `json:"is_late"`
}

// OrderResponse is one order on the active board.
type OrderResponse struct {
	ID                   string             `json:"id"`
	OrderNumber          string             `json:"order_number"`
	Origin               string             `json:"origin"`
	TableRef             string             `json:"table_ref,omitempty"`
	Items                []LineItemResponse `json:"items"`
	Priority             string             `json:"priority"`
	Status               string             `json:"status"`
	ReceivedAt           time.Time          `json:"received_at"`
	StartedAt            *time.Time         `json:"started_at,omitempty"`
	CompletedAt          *time.Time         `json:"completed_at,omitempty"`
	EstimatedPrepMinutes int                `json:"estimated_prep_minutes"`
	ActualPrepMinutes    *int               `json:"actual_prep_minutes,omitempty"`
	AssignedStaffID      *string            `json:"assigned_staff_id,omitempty"`
	Timing               *TimingResponse    `json:"timing,omitempty"`
}

// StatsResponse is the metrics snapshot for one window.
type StatsResponse struct {
	From               time.Time `json:"from"`
	To                 time.Time `json:"to"`
	StaffID            *string   `json:"staff_id,omitempty"`
	TotalOrders        int       `json:"total_orders"`
	AveragePrepMinutes float64   `json:"average_prep_minutes"`
	FastestPrepMinutes int       `json:"fastest_prep_minutes"`
	SlowestPrepMinutes int       `json:"slowest_prep_minutes"`
	OrdersPerHour      float64   `json:"orders_per_hour"`
	EfficiencyRate     float64   `json:"efficiency_rate"`
	PerformanceScore   *float64  `json:"performance_score,omitempty"`
}

// StaffResponse is one roster member.
type StaffResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	Shift        string `json:"shift"`
	Availability string `json:"availability"`
}

// StaffPerformanceResponse carries one member's metrics for a window.
type StaffPerformanceResponse struct {
	Member             StaffResponse `json:"member"`
	From               time.Time     `json:"from"`
	To                 time.Time     `json:"to"`
	TotalOrders        int           `json:"total_orders"`
	AveragePrepMinutes float64       `json:"average_prep_minutes"`
	FastestPrepMinutes int           `json:"fastest_prep_minutes"`
	SlowestPrepMinutes int           `json:"slowest_prep_minutes"`
	OrdersPerHour      float64       `json:"orders_per_hour"`
	EfficiencyRate     float64       `json:"efficiency_rate"`
	PerformanceScore   float64       `json:"performance_score"`
}

// HistoryRecordResponse is one entry in the cooking history feed.
type HistoryRecordResponse struct {
	ID                   string    `json:"id"`
	OrderID              string    `json:"order_id"`
	OrderNumber          string    `json:"order_number"`
	ItemSummary          string    `json:"item_summary"`
	StaffID              *string   `json:"staff_id,omitempty"`
	EstimatedPrepMinutes int       `json:"estimated_prep_minutes"`
	ActualPrepMinutes    int       `json:"actual_prep_minutes"`
	StartedAt            time.Time `json:"started_at"`
	CompletedAt          time.Time `json:"completed_at"`
	WithinEstimate       bool      `json:"within_estimate"`
}

func timingToResponse(view services.TimingView) TimingResponse {
	return TimingResponse{
		OrderID:          view.OrderID.String(),
		Status:           view.Status.String(),
		ElapsedMinutes:   view.ElapsedMinutes,
		RemainingMinutes: view.RemainingMinutes,
		IsOverdue:        view.IsOverdue,
		IsLate:           view.IsLate,
	}
}

func activeOrderToResponse(o queries.ActiveOrderResponse) OrderResponse {
	items := make([]LineItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, LineItemResponse{
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Notes:     item.Notes(),
			Modifiers: item.Modifiers(),
		})
	}

	var staffID *string
	if o.AssignedStaffID != nil {
		id := o.AssignedStaffID.String()
		staffID = &id
	}

	timing := timingToResponse(o.Timing)

	return OrderResponse{
		ID:                   o.ID.String(),
		OrderNumber:          o.OrderNumber,
		Origin:               o.Origin.String(),
		TableRef:             o.TableRef,
		Items:                items,
		Priority:             o.Priority.String(),
		Status:               o.Status.String(),
		ReceivedAt:           o.ReceivedAt,
		StartedAt:            o.StartedAt,
		CompletedAt:          o.CompletedAt,
		EstimatedPrepMinutes: o.EstimatedPrepMinutes,
		ActualPrepMinutes:    o.ActualPrepMinutes,
		AssignedStaffID:      staffID,
		Timing:               &timing,
	}
}

// aggregateToResponse renders an order straight from the aggregate, as
// returned by the transition handler. No timing view is attached; callers
// wanting timing use the timing endpoint or the active board.
func aggregateToResponse(aggregate *order.Order) OrderResponse {
	items := make([]LineItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, LineItemResponse{
			Name:      item.Name(),
			Quantity:  item.Quantity(),
			Notes:     item.Notes(),
			Modifiers: item.Modifiers(),
		})
	}

	var staffID *string
	if id := aggregate.AssignedStaff(); id != nil {
		s := id.String()
		staffID = &s
	}

	return OrderResponse{
		ID:                   aggregate.ID().String(),
		OrderNumber:          aggregate.OrderNumber(),
		Origin:               aggregate.Origin().String(),
		TableRef:             aggregate.TableRef(),
		Items:                items,
		Priority:             aggregate.Priority().String(),
		Status:               aggregate.Status().String(),
		ReceivedAt:           aggregate.ReceivedAt(),
		StartedAt:            aggregate.StartedAt(),
		CompletedAt:          aggregate.CompletedAt(),
		EstimatedPrepMinutes: aggregate.EstimatedPrepMinutes(),
		ActualPrepMinutes:    aggregate.ActualPrepMinutes(),
		AssignedStaffID:      staffID,
	}
}

func statsToResponse(r queries.GetKitchenStatsQueryResponse) StatsResponse {
	var staffID *string
	if r.StaffID != nil {
		id := r.StaffID.String()
		staffID = &id
	}

	return StatsResponse{
		From:               r.From,
		To:                 r.To,
		StaffID:            staffID,
		TotalOrders:        r.Stats.TotalOrders,
		AveragePrepMinutes: r.Stats.AveragePrepMinutes,
		FastestPrepMinutes: r.Stats.FastestPrepMinutes,
		SlowestPrepMinutes: r.Stats.SlowestPrepMinutes,
		OrdersPerHour:      r.Stats.OrdersPerHour,
		EfficiencyRate:     r.Stats.EfficiencyRate,
		PerformanceScore:   r.PerformanceScore,
	}
}

func staffToResponse(m queries.StaffMemberResponse) StaffResponse {
	return StaffResponse{
		ID:           m.ID.String(),
		Name:         m.Name,
		Role:         m.Role.String(),
		Shift:        m.Shift.String(),
		Availability: m.Availability.String(),
	}
}

func performanceToResponse(r queries.GetStaffPerformanceQueryResponse) StaffPerformanceResponse {
	return StaffPerformanceResponse{
		Member:             staffToResponse(r.Member),
		From:               r.From,
		To:                 r.To,
		TotalOrders:        r.Stats.TotalOrders,
		AveragePrepMinutes: r.Stats.AveragePrepMinutes,
		FastestPrepMinutes: r.Stats.FastestPrepMinutes,
		SlowestPrepMinutes: r.Stats.SlowestPrepMinutes,
		OrdersPerHour:      r.Stats.OrdersPerHour,
		EfficiencyRate:     r.Stats.EfficiencyRate,
		PerformanceScore:   r.PerformanceScore,
	}
}

func historyRecordToResponse(r queries.HistoryRecordResponse) HistoryRecordResponse {
	var staffID *string
	if r.StaffID != nil {
		id := r.StaffID.String()
		staffID = &id
	}

	return HistoryRecordResponse{
		ID:                   r.ID.String(),
		OrderID:              r.OrderID.String(),
		OrderNumber:          r.OrderNumber,
		ItemSummary:          r.ItemSummary,
		StaffID:              staffID,
		EstimatedPrepMinutes: r.EstimatedPrepMinutes,
		ActualPrepMinutes:    r.ActualPrepMinutes,
		StartedAt:            r.StartedAt,
		CompletedAt:          r.CompletedAt,
		WithinEstimate:       r.WithinEstimate,
	}
}
