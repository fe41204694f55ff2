package main

import (
	"context"
	"time"

	"turbo-api/internal/application/schedule"
	"turbo-api/internal/domain/gateway/api"
	"turbo-api/internal/domain/gateway/cache"
	"turbo-api/internal/domain/gateway/queue"
	"turbo-api/internal/domain/profitability"
	httpclient "turbo-api/pkg/http"
	"turbo-api/pkg/log"
	"turbo-api/pkg/msg"
	"turbo-api/pkg/redis"
	"turbo-api/pkg/resource"
	pkgsqs "turbo-api/pkg/sqs"
)

const defaultShutdownTimeout = 10 * time.Second

func engineConfig() profitability.Config {
	cfg := profitability.DefaultConfig()
	cfg.RatedPowerKW = resource.GetFloat64OrDefault("app.turbine.rated-power-kw", cfg.RatedPowerKW)
	cfg.HoursPerYear = resource.GetFloat64OrDefault("app.turbine.hours-per-year", cfg.HoursPerYear)
	cfg.CutInSpeed = resource.GetFloat64OrDefault("app.turbine.cut-in-speed", cfg.CutInSpeed)
	cfg.RatedSpeed = resource.GetFloat64OrDefault("app.turbine.rated-speed", cfg.RatedSpeed)
	cfg.CutOutSpeed = resource.GetFloat64OrDefault("app.turbine.cut-out-speed", cfg.CutOutSpeed)
	return cfg
}

func newWeatherGateway() api.WeatherGateway {
	gateway := api.NewOpenWeatherGateway(api.OpenWeatherConfig{
		BaseURL:         resource.GetString("app.weather.base-url"),
		APIKey:          resource.GetString("app.weather.api-key"),
		Units:           resource.GetStringOrDefault("app.weather.units", "metric"),
		BreakerFailures: uint32(resource.GetIntOrDefault("app.weather.breaker.failures", 5)),
		BreakerTimeout:  resource.GetDurationOrDefault("app.weather.breaker.timeout", 30*time.Second),
		ClientOptions: httpclient.ClientOptions{
			ConnectionTimeout: resource.GetDurationOrDefault("app.weather.connect-timeout", 5*time.Second),
			ReadTimeout:       resource.GetDurationOrDefault("app.weather.read-timeout", 10*time.Second),
			Logger:            httpclient.ZapLogger{Name: "openweathermap"},
		},
	})
	return api.NewRateLimitedWeatherGateway(gateway,
		resource.GetFloat64("app.weather.rate-limit.rps"),
		resource.GetIntOrDefault("app.weather.rate-limit.burst", 1))
}

// newRedisClient connects only when the wind cache uses redis, nil otherwise
func newRedisClient(ctx context.Context) (*redis.Client, error) {
	if resource.GetString("app.wind.cache.provider") != "redis" {
		return nil, nil
	}

	config := redis.NewRedisConfig().
		WithHost(resource.GetStringOrDefault("app.redis.host", "localhost")).
		WithPort(resource.GetIntOrDefault("app.redis.port", 6379)).
		WithPassword(resource.GetString("app.redis.password")).
		WithDatabase(resource.GetInt("app.redis.database"))

	client, err := redis.NewClient(config)
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx); err != nil {
		log.Error(msg.GetMessage("redis.connection_failed", config.Addr(), err))
		_ = client.Close()
		return nil, err
	}
	log.Info(msg.GetMessage("redis.connected", config.Addr()))
	return client, nil
}

func newWindCache(client *redis.Client) cache.WindCache {
	if client == nil {
		return cache.NewMemoryWindCache()
	}
	ttl := resource.GetDurationOrDefault("app.wind.cache.redis-ttl", 15*time.Minute)
	return cache.NewRedisWindCache(redis.NewCache(client, "wind_data", ttl))
}

func newSamplingLock(client *redis.Client) schedule.RunLock {
	if client == nil {
		return nil
	}
	ttl := resource.GetDurationOrDefault("app.territory.sampling.lock-ttl", 15*time.Minute)
	return redis.NewLock(client, resource.GetStringOrDefault("app.name", "turbo-api"), "territory_sampling", ttl)
}

func newPublisher(ctx context.Context) (queue.AssessmentPublisher, error) {
	switch resource.GetString("app.events.provider") {
	case "sqs":
		client, err := pkgsqs.NewClient(ctx, pkgsqs.ClientConfig{
			Region:          resource.GetString("app.cloud.aws.region"),
			Endpoint:        resource.GetString("app.cloud.aws.endpoint"),
			AccessKeyID:     resource.GetString("app.cloud.aws.access-key"),
			SecretAccessKey: resource.GetString("app.cloud.aws.secret-key"),
		})
		if err != nil {
			return nil, err
		}
		return queue.NewSQSAssessmentPublisher(pkgsqs.NewSender(client), resource.GetString("app.events.queue-name")), nil
	case "kafka":
		topic := resource.GetString("app.events.topic")
		writer := queue.NewKafkaWriter(resource.GetStringSlice("app.kafka.brokers"), topic)
		return queue.NewKafkaAssessmentPublisher(writer, topic), nil
	default:
		log.Info(msg.GetMessage("event.disabled"))
		return queue.NewNoopPublisher(), nil
	}
}
