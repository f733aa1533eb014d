package catalog

import (
	"database/sql"

	"go.uber.org/zap"

	"depot/internal/catalog/controller"
	"depot/internal/catalog/repository"
	"depot/internal/catalog/usecase"
)

func NewModule(db *sql.DB, logger *zap.Logger) *controller.CatalogController {
	repo := repository.NewMySQLCatalogRepository(db)
	uc := usecase.NewCatalogUseCase(repo)
	return controller.NewCatalogController(uc, logger)
}
