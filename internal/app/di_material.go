package app

import (
	"fmt"

	materialHTTP "github.com/contenthub/backend/internal/material/http"
	materialRepository "github.com/contenthub/backend/internal/material/repository"
	materialUsecase "github.com/contenthub/backend/internal/material/usecase"
)

// MaterialRepository returns the material repository instance.
func (c *Container) MaterialRepository() (materialUsecase.MaterialRepository, error) {
	var err error
	c.materialRepoInit.Do(func() {
		c.materialRepo, err = c.initMaterialRepository()
		if err != nil {
			c.initErrors["materialRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["materialRepo"]; exists {
		return nil, storedErr
	}
	return c.materialRepo, nil
}

// MaterialUseCase returns the material use case instance.
func (c *Container) MaterialUseCase() (materialUsecase.MaterialUseCase, error) {
	var err error
	c.materialUseCaseInit.Do(func() {
		c.materialUseCase, err = c.initMaterialUseCase()
		if err != nil {
			c.initErrors["materialUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["materialUseCase"]; exists {
		return nil, storedErr
	}
	return c.materialUseCase, nil
}

// MaterialHandler returns the material HTTP handler.
func (c *Container) MaterialHandler() (*materialHTTP.MaterialHandler, error) {
	useCase, err := c.MaterialUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get material use case for handler: %w", err)
	}
	return materialHTTP.NewMaterialHandler(useCase, c.Logger()), nil
}

// initMaterialRepository creates the material repository based on the database driver.
func (c *Container) initMaterialRepository() (materialUsecase.MaterialRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for material repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return materialRepository.NewPostgreSQLMaterialRepository(db), nil
	case "mysql":
		return materialRepository.NewMySQLMaterialRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initMaterialUseCase creates the material use case with all its dependencies.
func (c *Container) initMaterialUseCase() (materialUsecase.MaterialUseCase, error) {
	repo, err := c.MaterialRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get material repository for use case: %w", err)
	}

	tagUseCase, err := c.TagUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get tag use case for material use case: %w", err)
	}

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for material use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for material use case: %w", err)
	}

	useCase := materialUsecase.NewMaterialUseCase(
		repo,
		c.PageFetcher(),
		c.ImageFetcher(),
		tagUseCase,
		txManager,
	)
	return materialUsecase.NewMaterialUseCaseWithMetrics(useCase, businessMetrics), nil
}
