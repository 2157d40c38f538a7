package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/Sahil-at-Work/TripSmart/internal/domain"
)

// DefaultBaseURL is the public OpenWeather API host.
const DefaultBaseURL = "https://api.openweathermap.org"

// Client talks to the OpenWeather current-weather, 5-day forecast and direct
// geocoding endpoints. Units are metric.
type Client struct {
	session *http.Client
	baseURL string
	apiKey  string
}

// NewClient returns a Client for apiKey. An empty baseURL selects
// DefaultBaseURL; a nil httpClient gets a 10 second timeout.
func NewClient(apiKey, baseURL string, httpClient *http.Client) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("weather: openweather api key is required")
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		session: httpClient,
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}, nil
}

type owConditions struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type owCurrent struct {
	owConditions
	Name string `json:"name"`
}

type owForecast struct {
	List []struct {
		owConditions
		Dt int64 `json:"dt"`
	} `json:"list"`
	City struct {
		Name string `json:"name"`
	} `json:"city"`
}

type owPlace struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Current implements Source.
func (c *Client) Current(ctx context.Context, at domain.Coordinates) (domain.Observation, error) {
	var body owCurrent
	if err := c.getJSON(ctx, "/data/2.5/weather", c.coordQuery(at), &body); err != nil {
		return domain.Observation{}, fmt.Errorf("weather.Client.Current: %w", err)
	}
	return body.observation(body.Name), nil
}

// Forecast implements Source.
func (c *Client) Forecast(ctx context.Context, at domain.Coordinates) ([]domain.ForecastPoint, error) {
	var body owForecast
	if err := c.getJSON(ctx, "/data/2.5/forecast", c.coordQuery(at), &body); err != nil {
		return nil, fmt.Errorf("weather.Client.Forecast: %w", err)
	}
	points := make([]domain.ForecastPoint, 0, len(body.List))
	for _, item := range body.List {
		points = append(points, domain.ForecastPoint{
			At:          time.Unix(item.Dt, 0).UTC(),
			Observation: item.observation(body.City.Name),
		})
	}
	return points, nil
}

// Geocode implements Geocoder using the first direct-geocoding match.
// Returns domain.ErrNotFound when the name matches nothing.
func (c *Client) Geocode(ctx context.Context, name string) (domain.Coordinates, error) {
	q := url.Values{}
	q.Set("q", name)
	q.Set("limit", "1")

	var places []owPlace
	if err := c.getJSON(ctx, "/geo/1.0/direct", q, &places); err != nil {
		return domain.Coordinates{}, fmt.Errorf("weather.Client.Geocode: %w", err)
	}
	if len(places) == 0 {
		return domain.Coordinates{}, fmt.Errorf("weather.Client.Geocode: %q: %w", name, domain.ErrNotFound)
	}
	return domain.Coordinates{Lat: places[0].Lat, Lon: places[0].Lon}, nil
}

func (o owConditions) observation(city string) domain.Observation {
	obs := domain.Observation{
		Temperature: int(math.Round(o.Main.Temp)),
		FeelsLike:   int(math.Round(o.Main.FeelsLike)),
		Humidity:    o.Main.Humidity,
		WindSpeed:   o.Wind.Speed,
		City:        city,
	}
	if len(o.Weather) > 0 {
		obs.Description = o.Weather[0].Description
		obs.Main = o.Weather[0].Main
		obs.Icon = o.Weather[0].Icon
	}
	return obs
}

func (c *Client) coordQuery(at domain.Coordinates) url.Values {
	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(at.Lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(at.Lon, 'f', -1, 64))
	q.Set("units", "metric")
	return q
}

func (c *Client) getJSON(ctx context.Context, path string, q url.Values, dst any) error {
	q.Set("appid", c.apiKey)
	endpoint := c.baseURL + path + "?" + q.Encode()

	resp, err := c.doWithRetry(ctx, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("Accept", "application/json")
		return req, nil
	})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("openweather status %d: %s", e.Code, e.Body)
}

func (c *Client) do(req *http.Request) (*http.Response, error) {
	resp, err := c.session.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode >= 400 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		resp.Body.Close()
		return nil, &httpStatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(b))}
	}
	return resp, nil
}

// doWithRetry retries network errors, 429 and 5xx responses with
// exponential backoff while respecting context cancellation.
func (c *Client) doWithRetry(ctx context.Context, makeReq func() (*http.Request, error)) (*http.Response, error) {
	const maxAttempts = 3
	backoff := 200 * time.Millisecond

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		req, err := makeReq()
		if err != nil {
			return nil, fmt.Errorf("make request: %w", err)
		}

		resp, err := c.do(req)
		if err == nil {
			return resp, nil
		}
		lastErr = err

		retry := false
		var he *httpStatusError
		if errors.As(err, &he) {
			switch he.Code {
			case http.StatusTooManyRequests, http.StatusInternalServerError, http.StatusBadGateway,
				http.StatusServiceUnavailable, http.StatusGatewayTimeout:
				retry = true
			}
		}
		var netErr net.Error
		if !retry && errors.As(err, &netErr) {
			retry = true
		}

		if !retry || attempt == maxAttempts {
			return nil, lastErr
		}

		timer := time.NewTimer(backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
		backoff *= 2
	}
	return nil, lastErr
}
