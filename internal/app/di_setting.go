package app

import (
	"fmt"

	settingHTTP "github.com/contenthub/backend/internal/setting/http"
	settingRepository "github.com/contenthub/backend/internal/setting/repository"
	settingUsecase "github.com/contenthub/backend/internal/setting/usecase"
)

// SettingRepository returns the setting repository instance.
func (c *Container) SettingRepository() (settingUsecase.SettingRepository, error) {
	var err error
	c.settingRepoInit.Do(func() {
		c.settingRepo, err = c.initSettingRepository()
		if err != nil {
			c.initErrors["settingRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["settingRepo"]; exists {
		return nil, storedErr
	}
	return c.settingRepo, nil
}

// SettingUseCase returns the setting use case instance.
func (c *Container) SettingUseCase() (settingUsecase.SettingUseCase, error) {
	var err error
	c.settingUseCaseInit.Do(func() {
		c.settingUseCase, err = c.initSettingUseCase()
		if err != nil {
			c.initErrors["settingUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["settingUseCase"]; exists {
		return nil, storedErr
	}
	return c.settingUseCase, nil
}

// SettingHandler returns the setting HTTP handler.
func (c *Container) SettingHandler() (*settingHTTP.SettingHandler, error) {
	useCase, err := c.SettingUseCase()
	if err != nil {
		return nil, fmt.Errorf("failed to get setting use case for handler: %w", err)
	}
	return settingHTTP.NewSettingHandler(useCase, c.Logger()), nil
}

// initSettingRepository creates the setting repository based on the database driver.
func (c *Container) initSettingRepository() (settingUsecase.SettingRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for setting repository: %w", err)
	}

	switch c.config.DBDriver {
	case "postgres":
		return settingRepository.NewPostgreSQLSettingRepository(db), nil
	case "mysql":
		return settingRepository.NewMySQLSettingRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initSettingUseCase creates the setting use case with all its dependencies.
func (c *Container) initSettingUseCase() (settingUsecase.SettingUseCase, error) {
	repo, err := c.SettingRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get setting repository for use case: %w", err)
	}

	cipher, err := c.Cipher()
	if err != nil {
		return nil, fmt.Errorf("failed to get cipher for setting use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for setting use case: %w", err)
	}

	useCase := settingUsecase.NewSettingUseCase(repo, cipher)
	return settingUsecase.NewSettingUseCaseWithMetrics(useCase, businessMetrics), nil
}
