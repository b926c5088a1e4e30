package commands

import (
	"bytes"
	"context"
	"io"
	"time"

	"printmarket/internal/core/domain/model/geometry"
	"printmarket/internal/core/domain/model/kernel"
	"printmarket/internal/core/domain/model/product"
	"printmarket/internal/core/ports"
)

// UploadModelCommandHandler handles model uploads: the STL stream is
// analyzed, the bytes are stored and the Product is persisted with its
// frozen analysis snapshot.
//
// The analyzer runs before the transaction: analysis is CPU-bound and must
// not hold a database transaction open. An ASCII or malformed stream fails
// with a typed error and nothing is persisted.
type UploadModelCommandHandler struct {
	uowFactory ProductUoWFactory
	analyzer   geometry.Analyzer
	store      ports.ObjectStore
}

// NewUploadModelCommandHandler creates a handler for model uploads.
func NewUploadModelCommandHandler(
	uowFactory ProductUoWFactory,
	analyzer geometry.Analyzer,
	store ports.ObjectStore,
) UploadModelCommandHandler {
	return UploadModelCommandHandler{
		uowFactory: uowFactory,
		analyzer:   analyzer,
		store:      store,
	}
}

// Handle processes the upload command.
//
// The stream is analyzed while being buffered; when the analyzer stops early
// at its triangle cap the remaining bytes are drained into the buffer so the
// stored object is always the complete upload. Models exceeding the platform
// dimension limit are rejected before anything is stored.
func (h UploadModelCommandHandler) Handle(ctx context.Context, cmd UploadModelCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	var buf bytes.Buffer
	analysis, err := h.analyzer.Analyze(io.TeeReader(cmd.File(), &buf))
	if err != nil {
		return err
	}
	if _, err = io.Copy(&buf, cmd.File()); err != nil {
		return err
	}

	// Dimension check before storing, so an oversized model leaves nothing behind.
	if _, err = kernel.NewDimensions(analysis.Width, analysis.Depth, analysis.Height); err != nil {
		return err
	}

	storageRef, err := h.store.Put(ctx, "models", &buf)
	if err != nil {
		return err
	}

	newProduct, err := product.NewProduct(
		cmd.ProductID(),
		cmd.OwnerID(),
		cmd.Title(),
		cmd.Description(),
		cmd.Filename(),
		storageRef,
		analysis,
		time.Now(),
	)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ProductRepository().Add(ctx, newProduct); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
