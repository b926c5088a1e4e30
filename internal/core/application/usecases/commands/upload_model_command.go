package commands

import (
	"errors"
	"io"

	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/pkg/guard"
)

var (
	ErrUploadModelCommandIsNotConstructed = errors.New(
		"UploadModelCommand must be created via NewUploadModelCommand constructor",
	)
	ErrTitleIsRequired    = errors.New("title is required")
	ErrFilenameIsRequired = errors.New("filename is required")
	ErrFileIsRequired     = errors.New("file is required")
)

// UploadModelCommand represents a request to upload a printable model.
// The binary STL stream is analyzed, stored and registered as a Product
// with a frozen geometry snapshot.
//
// Example:
//
//	productID := kernel.NewUUID()
//	cmd, err := NewUploadModelCommand(productID, ownerID, "Benchy", "", "benchy.stl", file)
//	if err != nil {
//	    return fmt.Errorf("invalid upload: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("upload failed: %w", err)
//	}
type UploadModelCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	ownerID     kernel.UUID
	title       string
	description string
	filename    string
	file        io.Reader

	guard guard.ConstructorGuard
}

// NewUploadModelCommand creates a command to upload a model file.
// Validates identifiers, title, filename and the presence of a file stream.
func NewUploadModelCommand(
	productID kernel.UUID,
	ownerID kernel.UUID,
	title string,
	description string,
	filename string,
	file io.Reader,
) (UploadModelCommand, error) {
	uploadCommand := UploadModelCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		uploadCommand.setProductID(productID),
		uploadCommand.setOwnerID(ownerID),
		uploadCommand.setTitle(title),
		uploadCommand.setFilename(filename),
		uploadCommand.setFile(file),
	); err != nil {
		return UploadModelCommand{}, err
	}

	return uploadCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UploadModelCommand) Validate() error {
	return c.guard.Validate(ErrUploadModelCommandIsNotConstructed)
}

// ProductID returns the identifier the new product will carry.
func (c UploadModelCommand) ProductID() kernel.UUID {
	return c.productID
}

// OwnerID returns the uploading participant.
func (c UploadModelCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Title returns the display title of the model.
func (c UploadModelCommand) Title() string {
	return c.title
}

// Description returns the free-form model description.
func (c UploadModelCommand) Description() string {
	return c.description
}

// Filename returns the original filename of the upload.
func (c UploadModelCommand) Filename() string {
	return c.filename
}

// File returns the binary STL stream.
func (c UploadModelCommand) File() io.Reader {
	return c.file
}

func (c *UploadModelCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UploadModelCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *UploadModelCommand) setTitle(title string) error {
	if title == "" {
		return ErrTitleIsRequired
	}

	c.title = title
	return nil
}

func (c *UploadModelCommand) setFilename(filename string) error {
	if filename == "" {
		return ErrFilenameIsRequired
	}

	c.filename = filename
	return nil
}

func (c *UploadModelCommand) setFile(file io.Reader) error {
	if file == nil {
		return ErrFileIsRequired
	}

	c.file = file
	return nil
}
