package services

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"store-api/internal/domain"
	"store-api/internal/infra/rabbitmq"
	"store-api/internal/repository"
)

type OrderService struct {
	orders    repository.OrderRepository
	users     repository.UserRepository
	publisher rabbitmq.PublisherInterface
}

// NewOrderService builds the order service. publisher may be nil, in which
// case no lifecycle events are emitted.
func NewOrderService(orders repository.OrderRepository, users repository.UserRepository, publisher rabbitmq.PublisherInterface) *OrderService {
	return &OrderService{orders: orders, users: users, publisher: publisher}
}

func (s *OrderService) List(ctx context.Context, f repository.OrderFilter) ([]domain.OrderWithUser, error) {
	return s.orders.FindAll(ctx, f)
}

func (s *OrderService) Get(ctx context.Context, id int64) (*domain.OrderWithUser, error) {
	o, err := s.orders.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrOrderNotFound
	}
	return o, nil
}

func (s *OrderService) Create(ctx context.Context, userID *int64, totalAmount float64, status domain.OrderStatus) (*domain.OrderWithUser, error) {
	if totalAmount == 0 {
		return nil, &domain.ValidationError{Reason: "Total amount is required"}
	}

	// A zero user id is treated the same as no user id.
	if userID != nil && *userID == 0 {
		userID = nil
	}
	if userID != nil {
		if err := s.checkUserExists(ctx, *userID); err != nil {
			return nil, err
		}
	}
	if status == "" {
		status = domain.StatusPending
	}

	id, err := s.orders.Insert(ctx, &domain.Order{UserID: userID, TotalAmount: totalAmount, Status: status})
	if err != nil {
		return nil, err
	}

	created, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	go s.publish(domain.EventOrderCreated, domain.OrderCreatedEvent{
		OrderID:     created.ID,
		UserID:      created.UserID,
		TotalAmount: created.TotalAmount,
		Status:      created.Status,
		CreatedAt:   created.CreatedAt,
	})
	return created, nil
}

func (s *OrderService) Update(ctx context.Context, id int64, patch domain.OrderPatch) (*domain.OrderWithUser, error) {
	existing, err := s.orders.FindPlainByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrOrderNotFound
	}

	// A zero user id is treated the same as an explicit null.
	if patch.UserID.Set && patch.UserID.Value != nil && *patch.UserID.Value == 0 {
		patch.UserID.Value = nil
	}
	if patch.UserID.Set && patch.UserID.Value != nil {
		if err := s.checkUserExists(ctx, *patch.UserID.Value); err != nil {
			return nil, err
		}
	}

	if patch.UserID.Set {
		existing.UserID = patch.UserID.Value
	}
	if patch.TotalAmount != 0 {
		existing.TotalAmount = patch.TotalAmount
	}
	if patch.Status != "" {
		existing.Status = patch.Status
	}

	if err := s.orders.Update(ctx, existing); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *OrderService) UpdateStatus(ctx context.Context, id int64, status domain.OrderStatus) (*domain.OrderWithUser, error) {
	if status == "" {
		return nil, &domain.ValidationError{Reason: "Status is required"}
	}
	if !domain.ValidStatus(status) {
		return nil, &domain.ValidationError{Reason: "Invalid status. Must be one of: " + statusList()}
	}

	existing, err := s.orders.FindPlainByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.ErrOrderNotFound
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	updated, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	go s.publish(domain.EventOrderStatusChanged, domain.OrderStatusChangedEvent{
		OrderID: updated.ID,
		Status:  updated.Status,
	})
	return updated, nil
}

func (s *OrderService) Delete(ctx context.Context, id int64) error {
	existing, err := s.orders.FindPlainByID(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return domain.ErrOrderNotFound
	}
	return s.orders.Delete(ctx, id)
}

func (s *OrderService) ByStatus(ctx context.Context, status domain.OrderStatus) ([]domain.OrderWithUser, error) {
	return s.orders.FindAll(ctx, repository.OrderFilter{Status: &status})
}

func (s *OrderService) checkUserExists(ctx context.Context, userID int64) error {
	u, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if u == nil {
		return &domain.ValidationError{Reason: "User not found"}
	}
	return nil
}

func (s *OrderService) publish(event string, payload any) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.Publish(context.Background(), event, payload); err != nil {
		log.Error().Err(err).Str("event", event).Msg("publish order event")
	}
}

func statusList() string {
	statuses := domain.OrderStatuses()
	parts := make([]string, len(statuses))
	for i, st := range statuses {
		parts[i] = string(st)
	}
	return strings.Join(parts, ", ")
}
