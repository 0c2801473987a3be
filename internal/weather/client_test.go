package weather

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
)

func newPowerServer(t *testing.T, parameters map[string]map[string]float64) *httptest.Server {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("community"); got != "RE" {
			t.Errorf("expected community RE, got %q", got)
		}
		if got := r.URL.Query().Get("parameters"); got != "T2M,RH2M,ALLSKY_SFC_SW_DWN" {
			t.Errorf("unexpected parameters %q", got)
		}

		var payload powerResponse
		payload.Properties.Parameter = parameters
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			t.Errorf("encode response: %v", err)
		}
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetchPrefersLatestNonZeroSample(t *testing.T) {
	server := newPowerServer(t, map[string]map[string]float64{
		"T2M": {
			"2026083108": 29.4,
			"2026083109": 31.2,
			"2026083110": 0,
			"2026083111": -999,
		},
		"RH2M": {
			"2026083110": 64,
			"2026083111": -999,
		},
		"ALLSKY_SFC_SW_DWN": {
			"2026083110": 500,
			"2026083111": -999,
		},
	})

	client := NewClient(server.URL, nil, zap.NewNop())
	reading := client.Fetch(context.Background(), 11.0168, 76.9558)

	if reading.Temperature != 31.2 {
		t.Fatalf("expected most recent non-zero temperature 31.2, got %v", reading.Temperature)
	}
	if reading.Humidity != 64 {
		t.Fatalf("expected humidity 64, got %v", reading.Humidity)
	}
	if reading.SolarIrradiance != 500 || reading.UVIndex != 20 {
		t.Fatalf("expected irradiance 500 and uv 20, got %v and %v", reading.SolarIrradiance, reading.UVIndex)
	}
	if reading.AQI != 50 {
		t.Fatalf("expected placeholder aqi 50, got %d", reading.AQI)
	}
}

func TestFetchZeroOnlySeriesUsesLatestNonSentinel(t *testing.T) {
	server := newPowerServer(t, map[string]map[string]float64{
		"T2M": {
			"2026083109": 0,
			"2026083110": -999,
		},
	})

	client := NewClient(server.URL, nil, zap.NewNop())
	reading := client.Fetch(context.Background(), 11.0168, 76.9558)

	if reading.Temperature != 0 {
		t.Fatalf("expected latest non-sentinel temperature 0, got %v", reading.Temperature)
	}
	// Humidity and irradiance series are absent entirely.
	if reading.Humidity != fallbackHumidity || reading.UVIndex != fallbackUVIndex {
		t.Fatalf("expected per-parameter defaults, got %+v", reading)
	}
}

func TestFetchAllSentinelSeriesFallsBackPerParameter(t *testing.T) {
	server := newPowerServer(t, map[string]map[string]float64{
		"T2M":               {"2026083110": -999, "2026083111": -999},
		"RH2M":              {"2026083110": -999},
		"ALLSKY_SFC_SW_DWN": {"2026083110": -999},
	})

	client := NewClient(server.URL, nil, zap.NewNop())
	reading := client.Fetch(context.Background(), 11.0168, 76.9558)

	want := Reading{
		Temperature: fallbackTemperature,
		Humidity:    fallbackHumidity,
		UVIndex:     fallbackUVIndex,
		AQI:         placeholderAQI,
	}
	if reading != want {
		t.Fatalf("expected %+v, got %+v", want, reading)
	}
}

func TestFetchUnreachableUpstreamServesFullFallback(t *testing.T) {
	client := NewClient("http://127.0.0.1:1/unreachable", nil, zap.NewNop())
	reading := client.Fetch(context.Background(), 11.0168, 76.9558)

	want := Reading{
		Temperature:     fallbackTemperature,
		Humidity:        fallbackHumidity,
		SolarIrradiance: fallbackIrradiance,
		UVIndex:         fallbackUVIndex,
		AQI:             fallbackAQI,
	}
	if reading != want {
		t.Fatalf("expected full fallback reading %+v, got %+v", want, reading)
	}
}

func TestFetchUpstreamErrorStatusFallsBack(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unavailable", http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	client := NewClient(server.URL, nil, zap.NewNop())
	reading := client.Fetch(context.Background(), 11.0168, 76.9558)

	if reading.Temperature != fallbackTemperature || reading.AQI != fallbackAQI {
		t.Fatalf("expected fallback reading, got %+v", reading)
	}
}
