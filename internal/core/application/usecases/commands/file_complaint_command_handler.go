package commands

import (
	"context"
	"time"

	"cleanly/internal/core/domain/model/order"
)

// FileComplaintCommandHandler handles complaint submissions.
//
// Write-once is enforced twice: the aggregate rejects a complaint when one
// is already loaded, and the repository writes through a conditional update
// keyed on the description still being empty. The second check closes the
// race between two submissions that both read a complaint-free order.
type FileComplaintCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFileComplaintCommandHandler creates a handler for complaint submissions.
func NewFileComplaintCommandHandler(uowFactory OrderUoWFactory) FileComplaintCommandHandler {
	return FileComplaintCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the complaint command.
// Returns an ObjectAlreadyExistsError when the order already carries a
// complaint, whether detected on read or lost to a concurrent writer.
func (h *FileComplaintCommandHandler) Handle(ctx context.Context, cmd FileComplaintCommand) (*order.Order, error) {
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

	now := time.Now()
	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = aggregate.FileComplaint(cmd.Description(), cmd.ImageURL(), now); err != nil {
		return nil, err
	}

	if err = orderRepo.SetComplaintIfEmpty(ctx, cmd.OrderID(), cmd.Description(), cmd.ImageURL(), now); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
