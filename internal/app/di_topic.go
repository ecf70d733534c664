package app

import (
	"fmt"

	topicHTTP "github.com/contenthub/backend/internal/topic/http"
	topicRepository "github.com/contenthub/backend/internal/topic/repository"
	topicUsecase "github.com/contenthub/backend/internal/topic/usecase"
)

// refinerAPIKeySetting names the setting that holds the refiner credential.
const refinerAPIKeySetting = "deepseek_api_key"

// TopicRepository returns the topic repository instance.
func (c *Container) TopicRepository() (topicUsecase.TopicRepository, error) {
	var err error
	c.topicRepoInit.Do(func() {
		c.topicRepo, err = c.initTopicRepository()
		if err != nil {
			c.initErrors["topicRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["topicRepo"]; exists {
		return nil, storedErr
	}
	return c.topicRepo, nil
}

// TopicUseCase returns the topic use case instance.
func (c *Container) TopicUseCase() (topicUsecase.TopicUseCase, error) {
	var err error
	c.topicUseCaseInit.Do(func() {
		c.topicUseCase, err = c.initTopicUseCase()
		if err != nil {
			c.initErrors["topicUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["topicUseCase"]; exists {
		return nil, storedErr
	}
	return c.topicUseCase, nil
}

// TopicHandler returns the topic HTTP handler.
func (c *Container) TopicHandler() (*topicHTTP.TopicHandler, error) {
	useCase, err := c.TopicUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get topic use case for handler: %w", err)
	}
	return topicHTTP.NewTopicHandler(useCase, c.Logger()), nil
}

// initTopicRepository creates the topic repository based on the database driver.
func (c *Container) initTopicRepository() (topicUsecase.TopicRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for topic repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return topicRepository.NewPostgreSQLTopicRepository(db), nil
	case "mysql":
		return topicRepository.NewMySQLTopicRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initTopicUseCase creates the topic use case with all its dependencies.
func (c *Container) initTopicUseCase() (topicUsecase.TopicUseCase, error) {
	topicRepo, err := c.TopicRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get topic repository for use case: %w", err)
	}

	materialRepo, err := c.MaterialRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get material repository for topic use case: %w", err)
	}

	settingUseCase, err := c.SettingUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get setting use case for topic use case: %w", err)
	}

	statsUseCase, err := c.StatsUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get stats use case for topic use case: %w", err)
	}

	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for topic use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for topic use case: %w", err)
	}

	useCase := topicUsecase.NewTopicUseCase(
		topicRepo,
		materialRepo,
		settingUseCase,
		statsUseCase,
		c.RefinerClient(),
		txManager,
		refinerAPIKeySetting,
	)
	return topicUsecase.NewTopicUseCaseWithMetrics(useCase, businessMetrics), nil
}
