package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"time"

	"github.com/aerosenselabs/aerosense/internal/cache"
	"github.com/aerosenselabs/aerosense/internal/metrics"
	"go.uber.org/zap"
)

// sentinelNoData marks a missing sample in NASA POWER hourly series.
const sentinelNoData = -999

const (
	paramTemperature = "T2M"
	paramHumidity    = "RH2M"
	paramIrradiance  = "ALLSKY_SFC_SW_DWN"

	fallbackTemperature = 28
	fallbackHumidity    = 60
	fallbackIrradiance  = 500
	fallbackUVIndex     = 5
	// AQI has no upstream source; 50 marks a derived reading, 75 a full
	// fallback one.
	placeholderAQI = 50
	fallbackAQI    = 75

	// Rough conversion from surface irradiance (W/m2) to UV index.
	uvIrradianceDivisor = 25

	upstreamTimeout = 10 * time.Second
	cacheTTL        = 10 * time.Minute
	windowDays      = 7
)

type Reading struct {
	Temperature     float64 `json:"temperature"`
	Humidity        float64 `json:"humidity"`
	SolarIrradiance float64 `json:"solar_irradiance"`
	UVIndex         float64 `json:"uv_index"`
	AQI             int     `json:"aqi"`
}

type powerResponse struct {
	Properties struct {
		Parameter map[string]map[string]float64 `json:"parameter"`
	} `json:"properties"`
}

// Client fetches point readings from the NASA POWER hourly API. It never
// surfaces upstream failures: any network, decode, or all-sentinel outcome
// degrades to a fixed fallback reading.
type Client struct {
	baseURL    string
	httpClient *http.Client
	cache      *cache.Cache
	logger     *zap.Logger
	now        func() time.Time
}

func NewClient(baseURL string, readingCache *cache.Cache, logger *zap.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: upstreamTimeout},
		cache:      readingCache,
		logger:     logger,
		now:        time.Now,
	}
}

// Fetch returns the current environmental reading for a coordinate. The
// result is cached briefly per rounded coordinate pair.
func (client *Client) Fetch(ctx context.Context, lat float64, lon float64) Reading {
	cacheKey := fmt.Sprintf("weather:%.2f:%.2f", lat, lon)

	var cached Reading
	if err := client.cache.Get(ctx, cacheKey, &cached); err == nil {
		return cached
	}

	reading, err := client.fetchUpstream(ctx, lat, lon)
	if err != nil {
		metrics.WeatherUpstreamFailures.Inc()
		client.logger.Warn("weather upstream failed, serving fallback", zap.Error(err))
		return fallbackReading()
	}

	if err := client.cache.Set(ctx, cacheKey, reading, cacheTTL); err != nil {
		client.logger.Debug("weather cache write failed", zap.Error(err))
	}
	return reading
}

func (client *Client) fetchUpstream(ctx context.Context, lat float64, lon float64) (Reading, error) {
	end := client.now()
	start := end.AddDate(0, 0, -windowDays)

	query := url.Values{}
	query.Set("parameters", fmt.Sprintf("%s,%s,%s", paramTemperature, paramHumidity, paramIrradiance))
	query.Set("community", "RE")
	query.Set("latitude", fmt.Sprintf("%v", lat))
	query.Set("longitude", fmt.Sprintf("%v", lon))
	query.Set("start", start.Format("20060102"))
	query.Set("end", end.Format("20060102"))
	query.Set("format", "JSON")

	requestCtx, cancel := context.WithTimeout(ctx, upstreamTimeout)
	defer cancel()

	request, err := http.NewRequestWithContext(requestCtx, http.MethodGet, client.baseURL+"?"+query.Encode(), nil)
	if err != nil {
		return Reading{}, fmt.Errorf("build request: %w", err)
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return Reading{}, fmt.Errorf("call nasa power: %w", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return Reading{}, fmt.Errorf("nasa power returned status %d", response.StatusCode)
	}

	var payload powerResponse
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		return Reading{}, fmt.Errorf("decode nasa power response: %w", err)
	}

	return buildReading(payload.Properties.Parameter), nil
}

func buildReading(parameters map[string]map[string]float64) Reading {
	temperature, temperatureOK := latestUsableSample(parameters[paramTemperature])
	humidity, humidityOK := latestUsableSample(parameters[paramHumidity])
	irradiance, irradianceOK := latestUsableSample(parameters[paramIrradiance])

	reading := Reading{
		Temperature: fallbackTemperature,
		Humidity:    fallbackHumidity,
		UVIndex:     fallbackUVIndex,
		AQI:         placeholderAQI,
	}
	if temperatureOK {
		reading.Temperature = temperature
	}
	if humidityOK {
		reading.Humidity = humidity
	}
	if irradianceOK {
		reading.SolarIrradiance = irradiance
		reading.UVIndex = irradiance / uvIrradianceDivisor
	}
	return reading
}

// latestUsableSample walks the hourly series newest-first, preferring the
// most recent non-zero sample and falling back to the most recent
// non-sentinel one. Timestamps are YYYYMMDDHH strings, so lexicographic
// order is chronological.
func latestUsableSample(series map[string]float64) (float64, bool) {
	if len(series) == 0 {
		return 0, false
	}

	timestamps := make([]string, 0, len(series))
	for timestamp := range series {
		timestamps = append(timestamps, timestamp)
	}
	sort.Sort(sort.Reverse(sort.StringSlice(timestamps)))

	latestNonSentinel := 0.0
	foundNonSentinel := false
	for _, timestamp := range timestamps {
		value := series[timestamp]
		if value == sentinelNoData {
			continue
		}
		if !foundNonSentinel {
			latestNonSentinel = value
			foundNonSentinel = true
		}
		if value != 0 {
			return value, true
		}
	}

	if foundNonSentinel {
		return latestNonSentinel, true
	}
	return 0, false
}

func fallbackReading() Reading {
	return Reading{
		Temperature:     fallbackTemperature,
		Humidity:        fallbackHumidity,
		SolarIrradiance: fallbackIrradiance,
		UVIndex:         fallbackUVIndex,
		AQI:             fallbackAQI,
	}
}
