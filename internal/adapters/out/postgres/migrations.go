package postgres

import (
	"gorm.io/gorm"

	"printmarket/internal/adapters/out/postgres/billingrepo"
	"printmarket/internal/adapters/out/postgres/orderrepo"
	"printmarket/internal/adapters/out/postgres/participantrepo"
	"printmarket/internal/adapters/out/postgres/photorepo"
	"printmarket/internal/adapters/out/postgres/productrepo"
)

// AutoMigrate creates or updates every table the marketplace persists to.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&participantrepo.ParticipantDTO{},
		&participantrepo.MaterialDTO{},
		&participantrepo.PrinterDTO{},
		&productrepo.ProductDTO{},
		&productrepo.CatalogMaterialDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.HistoryDTO{},
		&photorepo.PhotoDTO{},
		&billingrepo.PayoutDTO{},
		&billingrepo.RefundDTO{},
	)
}
