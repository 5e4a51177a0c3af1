package commands

import (
	"context"

	"ordertracker/internal/core/domain/model/order"
	"ordertracker/internal/core/ports"
)

// UpdateOrderStatusCommandHandler handles order status transitions.
// Loads the aggregate, applies the state machine, persists the change, and
// publishes the recorded StatusChangedEvent only after the commit succeeds.
// Idempotent self-transitions skip persistence and publication entirely.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.EventPublisher
}

// NewUpdateOrderStatusCommandHandler creates a handler for status transition
// operations.
func NewUpdateOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.EventPublisher,
) UpdateOrderStatusCommandHandler {
	return UpdateOrderStatusCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the status transition command and returns the resulting
// order. Fails with an ObjectNotFoundError if the order does not exist and
// with an InvalidTransitionError if the state machine rejects the change; in
// both cases nothing is persisted and no event is published.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateOrderStatusCommand,
) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	existing, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	changed, err := existing.ChangeStatus(cmd.Status())
	if err != nil {
		return nil, err
	}

	if !changed {
		// Idempotent no-op: nothing to persist, nothing to publish.
		return existing, nil
	}

	if err = orderRepo.Update(ctx, existing); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.publisher.Publish(ctx, existing.Events()...)
	existing.ClearEvents()

	return existing, nil
}
