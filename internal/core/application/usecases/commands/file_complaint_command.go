package commands

import (
	"errors"

	"cleanly/internal/core/domain/model/order"
	"cleanly/internal/pkg/guard"
)

var (
	ErrFileComplaintCommandIsNotConstructed = errors.New(
		"FileComplaintCommand must be created via NewFileComplaintCommand constructor",
	)
	ErrDescriptionIsRequired = errors.New("complaint description is required")
)

// FileComplaintCommand represents a customer filing a complaint about an
// order. The image URL is optional; the description is not. Complaints are
// write-once, so a second submission is rejected.
type FileComplaintCommand struct { //nolint:recvcheck //using for validation
	orderID     order.ID
	description string
	imageURL    string

	guard guard.ConstructorGuard
}

// NewFileComplaintCommand creates a command to file a complaint.
// Validates that the order ID is constructed and the description is not empty.
func NewFileComplaintCommand(orderID order.ID, description, imageURL string) (FileComplaintCommand, error) {
	complaintCommand := FileComplaintCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		complaintCommand.setOrderID(orderID),
		complaintCommand.setDescription(description),
	); err != nil {
		return FileComplaintCommand{}, err
	}

	complaintCommand.imageURL = imageURL
	return complaintCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrFileComplaintCommandIsNotConstructed if validation fails.
func (c FileComplaintCommand) Validate() error {
	return c.guard.Validate(ErrFileComplaintCommandIsNotConstructed)
}

// OrderID returns the identifier of the order being complained about.
func (c FileComplaintCommand) OrderID() order.ID {
	return c.orderID
}

// Description returns the complaint text.
func (c FileComplaintCommand) Description() string {
	return c.description
}

// ImageURL returns the optional complaint attachment reference.
func (c FileComplaintCommand) ImageURL() string {
	return c.imageURL
}

func (c *FileComplaintCommand) setOrderID(orderID order.ID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *FileComplaintCommand) setDescription(description string) error {
	if description == "" {
		return ErrDescriptionIsRequired
	}

	c.description = description
	return nil
}
