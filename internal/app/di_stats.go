package app

import (
	"fmt"

	statsHTTP "github.com/contenthub/backend/internal/stats/http"
	statsRepository "github.com/contenthub/backend/internal/stats/repository"
	statsUsecase "github.com/contenthub/backend/internal/stats/usecase"
)

// StatsRepository returns the usage stats repository instance.
func (c *Container) StatsRepository() (statsUsecase.StatsRepository, error) {
	var err error
	c.statsRepoInit.Do(func() {
		c.statsRepo, err = c.initStatsRepository()
		if err != nil {
			c.initErrors["statsRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["statsRepo"]; exists {
		return nil, storedErr
	}
	return c.statsRepo, nil
}

// StatsUseCase returns the usage stats use case instance.
func (c *Container) StatsUseCase() (statsUsecase.StatsUseCase, error) {
	var err error
	c.statsUseCaseInit.Do(func() {
		c.statsUseCase, err = c.initStatsUseCase()
		if err != nil {
			c.initErrors["statsUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["statsUseCase"]; exists {
		return nil, storedErr
	}
	return c.statsUseCase, nil
}

// StatsHandler returns the usage stats HTTP handler.
func (c *Container) StatsHandler() (*statsHTTP.StatsHandler, error) {
	useCase, err := c.StatsUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats use case for handler: %w", err)
	}
	return statsHTTP.NewStatsHandler(useCase, c.Logger()), nil
}

// initStatsRepository creates the usage stats repository based on the database driver.
func (c *Container) initStatsRepository() (statsUsecase.StatsRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for stats repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return statsRepository.NewPostgreSQLStatsRepository(db), nil
	case "mysql":
		return statsRepository.NewMySQLStatsRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initStatsUseCase creates the usage stats use case with all its dependencies.
func (c *Container) initStatsUseCase() (statsUsecase.StatsUseCase, error) {
	repo, err := c.StatsRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats repository for use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for stats use case: %w", err)
	}

	useCase := statsUsecase.NewStatsUseCase(repo)
	return statsUsecase.NewStatsUseCaseWithMetrics(useCase, businessMetrics), nil
}
