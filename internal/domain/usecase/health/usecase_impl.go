package health

import (
	"weather-api/internal/domain/gateway/store"
	"weather-api/internal/domain/model"
)

type healthUseCase struct {
	storeGateway store.HealthStoreGateway
}

func NewHealthUseCase(storeGateway store.HealthStoreGateway) UseCase {
	return &healthUseCase{
		storeGateway: storeGateway,
	}
}

func (useCase *healthUseCase) CheckHealth() model.HealthResponse {
	storeHealth := useCase.storeGateway.Health()

	overallStatus := model.StatusUp
	if storeHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status: overallStatus,
		Store:  storeHealth,
	}
}
