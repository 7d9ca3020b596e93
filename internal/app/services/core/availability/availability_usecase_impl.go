package availability

import (
	"agendly-service/internal/app/config"
	"agendly-service/internal/app/contracts"
	"agendly-service/internal/app/models"
	"agendly-service/internal/pkg/constvars"
	"agendly-service/internal/pkg/dto/requests"
	"agendly-service/internal/pkg/dto/responses"
	"context"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type availabilityUsecase struct {
	availabilityRepository contracts.AvailabilityRepository
	redisRepository        contracts.RedisRepository
	internalConfig         *config.InternalConfig
	log                    *zap.Logger
}

func NewAvailabilityUsecase(
	availabilityRepository contracts.AvailabilityRepository,
	redisRepository contracts.RedisRepository,
	internalConfig *config.InternalConfig,
	log *zap.Logger,
) contracts.AvailabilityUsecase {
	return &availabilityUsecase{
		availabilityRepository: availabilityRepository,
		redisRepository:        redisRepository,
		internalConfig:         internalConfig,
		log:                    log,
	}
}

// GetWeeklyTemplate hydrates the provider's persisted records into the
// canonical seven-day template, serving from redis when possible.
func (uc *availabilityUsecase) GetWeeklyTemplate(ctx context.Context, providerID string) ([]responses.AvailabilityWindow, error) {
	cacheKey := constvars.RedisAvailabilityKeyPrefix + providerID

	cached, err := uc.redisRepository.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var windows []responses.AvailabilityWindow
		if unmarshalErr := json.Unmarshal([]byte(cached), &windows); unmarshalErr == nil {
			return windows, nil
		}
	}

	records, err := uc.availabilityRepository.FindByProviderID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	windows := buildWindowResponses(Hydrate(recordsFromModels(records)))

	cacheTTL := time.Duration(uc.internalConfig.App.AvailabilityCacheInMinute) * time.Minute
	if cacheErr := uc.redisRepository.Set(ctx, cacheKey, windows, cacheTTL); cacheErr != nil {
		uc.log.Warn("availabilityUsecase failed to cache weekly template",
			zap.String(constvars.LoggingProviderIDKey, providerID),
			zap.Error(cacheErr),
		)
	}
	return windows, nil
}

// SetWeeklyTemplate hydrates the posted entries, serializes the result back
// to the persistable form and replaces the provider's stored set.
func (uc *availabilityUsecase) SetWeeklyTemplate(ctx context.Context, providerID string, entries []requests.AvailabilityEntry) ([]responses.AvailabilityWindow, error) {
	incoming := make([]Record, 0, len(entries))
	for _, e := range entries {
		incoming = append(incoming, Record{
			DayOfWeek: e.DayOfWeek,
			Available: e.Available,
			StartTime: e.StartTime,
			EndTime:   e.EndTime,
		})
	}

	template := Hydrate(incoming)
	serialized := Serialize(template)

	stored := make([]models.Availability, 0, len(serialized))
	for _, rec := range serialized {
		record := models.Availability{
			ProviderID: providerID,
			DayOfWeek:  rec.DayOfWeek,
			Available:  rec.Available,
			StartTime:  rec.StartTime,
			EndTime:    rec.EndTime,
		}
		record.SetCreatedAtUpdatedAt()
		stored = append(stored, record)
	}

	if err := uc.availabilityRepository.ReplaceForProvider(ctx, providerID, stored); err != nil {
		return nil, err
	}

	cacheKey := constvars.RedisAvailabilityKeyPrefix + providerID
	if err := uc.redisRepository.Delete(ctx, cacheKey); err != nil {
		uc.log.Warn("availabilityUsecase failed to invalidate cache",
			zap.String(constvars.LoggingProviderIDKey, providerID),
			zap.Error(err),
		)
	}

	return buildWindowResponses(template), nil
}

func recordsFromModels(records []models.Availability) []Record {
	out := make([]Record, 0, len(records))
	for _, r := range records {
		out = append(out, Record{
			DayOfWeek: r.DayOfWeek,
			Available: r.Available,
			StartTime: r.StartTime,
			EndTime:   r.EndTime,
		})
	}
	return out
}

func buildWindowResponses(template []Window) []responses.AvailabilityWindow {
	out := make([]responses.AvailabilityWindow, 0, len(template))
	for _, w := range template {
		out = append(out, responses.AvailabilityWindow{
			DayOfWeek: w.DayOfWeek,
			Available: w.Available,
			StartTime: w.StartTime,
			EndTime:   w.EndTime,
		})
	}
	return out
}
