package commands

import (
	"errors"
	"io"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/order"
	"printmarket/internal/pkg/guard"
)

var ErrAttachPhotoCommandIsNotConstructed = errors.New(
	"AttachPhotoCommand must be created via NewAttachPhotoCommand constructor",
)

// AttachPhotoCommand represents a photo being attached to an order: a
// producer's before/after production shot, or a customer's dispute evidence.
type AttachPhotoCommand struct { //nolint:recvcheck //using for validation
	photoID    kernel.UUID
	orderID    kernel.UUID
	uploaderID kernel.UUID
	photoType  order.PhotoType
	caption    string
	file       io.Reader

	guard guard.ConstructorGuard
}

// NewAttachPhotoCommand creates a command to attach a photo to an order.
func NewAttachPhotoCommand(
	photoID kernel.UUID,
	orderID kernel.UUID,
	uploaderID kernel.UUID,
	photoType order.PhotoType,
	caption string,
	file io.Reader,
) (AttachPhotoCommand, error) {
	photoCommand := AttachPhotoCommand{
		caption: caption,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		photoCommand.setPhotoID(photoID),
		photoCommand.setOrderID(orderID),
		photoCommand.setUploaderID(uploaderID),
		photoCommand.setPhotoType(photoType),
		photoCommand.setFile(file),
	); err != nil {
		return AttachPhotoCommand{}, err
	}

	return photoCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AttachPhotoCommand) Validate() error {
	return c.guard.Validate(ErrAttachPhotoCommandIsNotConstructed)
}

// PhotoID returns the identifier the new photo will carry.
func (c AttachPhotoCommand) PhotoID() kernel.UUID {
	return c.photoID
}

// OrderID returns the order being photographed.
func (c AttachPhotoCommand) OrderID() kernel.UUID {
	return c.orderID
}

// UploaderID returns the uploading participant.
func (c AttachPhotoCommand) UploaderID() kernel.UUID {
	return c.uploaderID
}

// PhotoType returns the photo kind.
func (c AttachPhotoCommand) PhotoType() order.PhotoType {
	return c.photoType
}

// Caption returns the optional caption.
func (c AttachPhotoCommand) Caption() string {
	return c.caption
}

// File returns the photo byte stream.
func (c AttachPhotoCommand) File() io.Reader {
	return c.file
}

func (c *AttachPhotoCommand) setPhotoID(photoID kernel.UUID) error {
	if err := photoID.Validate(); err != nil {
		return err
	}

	c.photoID = photoID
	return nil
}

func (c *AttachPhotoCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AttachPhotoCommand) setUploaderID(uploaderID kernel.UUID) error {
	if err := uploaderID.Validate(); err != nil {
		return err
	}

	c.uploaderID = uploaderID
	return nil
}

func (c *AttachPhotoCommand) setPhotoType(photoType order.PhotoType) error {
	if err := photoType.Validate(); err != nil {
		return err
	}

	c.photoType = photoType
	return nil
}

func (c *AttachPhotoCommand) setFile(file io.Reader) error {
	if file == nil {
		return ErrFileIsRequired
	}

	c.file = file
	return nil
}
