package app

import (
	"fmt"

	tagHTTP "github.com/contenthub/backend/internal/tag/http"
	tagRepository "github.com/contenthub/backend/internal/tag/repository"
	tagUsecase "github.com/contenthub/backend/internal/tag/usecase"
)

// TagRepository returns the tag repository instance.
func (c *Container) TagRepository() (tagUsecase.TagRepository, error) {
	var err error
	c.tagRepoInit.Do(func() {
		c.tagRepo, err = c.initTagRepository()
		if err != nil {
			c.initErrors["tagRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tagRepo"]; exists {
		return nil, storedErr
	}
	return c.tagRepo, nil
}

// TagUseCase returns the tag use case instance.
func (c *Container) TagUseCase() (tagUsecase.TagUseCase, error) {
	var err error
	c.tagUseCaseInit.Do(func() {
		c.tagUseCase, err = c.initTagUseCase()
		if err != nil {
			c.initErrors["tagUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tagUseCase"]; exists {
		return nil, storedErr
	}
	return c.tagUseCase, nil
}

// TagHandler returns the tag HTTP handler.
func (c *Container) TagHandler() (*tagHTTP.TagHandler, error) {
	useCase, err := c.TagUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get tag use case for handler: %w", err)
	}
	return tagHTTP.NewTagHandler(useCase, c.Logger()), nil
}

// initTagRepository creates the tag repository based on the database driver.
func (c *Container) initTagRepository() (tagUsecase.TagRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for tag repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return tagRepository.NewPostgreSQLTagRepository(db), nil
	case "mysql":
		return tagRepository.NewMySQLTagRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTagUseCase creates the tag use case with its dependencies.
func (c *Container) initTagUseCase() (tagUsecase.TagUseCase, error) {
	repo, err := c.TagRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get tag repository for use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for tag use case: %w", err)
	}

	useCase := tagUsecase.NewTagUseCase(repo)
	return tagUsecase.NewTagUseCaseWithMetrics(useCase, businessMetrics), nil
}
