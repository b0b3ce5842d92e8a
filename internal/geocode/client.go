package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	ttlcache "github.com/jellydator/ttlcache/v3"
	"github.com/shenikar/emergensys/internal/models"
)

const (
	serviceName = "geocoder"
	// cacheCapacity ограничивает каждый кэш; при переполнении вытесняется самая старая запись
	cacheCapacity = 10000
)

var ErrNoResult = errors.New("no geocoding result")

// Client - клиент Nominatim-совместимого геокодера с кэшем ответов
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client

	forwardCache *ttlcache.Cache[string, models.Coordinates]
	reverseCache *ttlcache.Cache[string, string]
}

// NewClient создает клиент. Кэш живет в процессе, записи истекают через cacheTTL.
func NewClient(baseURL, userAgent string, timeout, cacheTTL time.Duration) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		userAgent:    userAgent,
		httpClient:   &http.Client{Timeout: timeout},
		forwardCache: ttlcache.New(
			ttlcache.WithTTL[string, models.Coordinates](cacheTTL),
			ttlcache.WithCapacity[string, models.Coordinates](cacheCapacity),
		),
		reverseCache: ttlcache.New(
			ttlcache.WithTTL[string, string](cacheTTL),
			ttlcache.WithCapacity[string, string](cacheCapacity),
		),
	}
}

// Run удаляет истекшие записи кэшей до отмены ctx
func (c *Client) Run(ctx context.Context) error {
	go c.forwardCache.Start()
	go c.reverseCache.Start()
	<-ctx.Done()
	c.forwardCache.Stop()
	c.reverseCache.Stop()
	return nil
}

type searchResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

type reverseResult struct {
	DisplayName string `json:"display_name"`
	Error       string `json:"error"`
}

// Forward переводит адрес в координаты
func (c *Client) Forward(ctx context.Context, address string) (*models.Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, &models.ValidationError{Field: "address", Message: "address is required"}
	}
	cacheKey := strings.ToLower(address)
	if item := c.forwardCache.Get(cacheKey); item != nil {
		coords := item.Value()
		return &coords, nil
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("limit", "1")
	params.Set("q", address)

	var results []searchResult
	if err := c.get(ctx, "/search", params, &results); err != nil {
		return nil, &models.ExternalServiceError{Service: serviceName, Op: "forward", Err: err}
	}
	if len(results) == 0 {
		return nil, &models.ExternalServiceError{Service: serviceName, Op: "forward", Err: ErrNoResult}
	}

	lat, errLat := strconv.ParseFloat(results[0].Lat, 64)
	lng, errLng := strconv.ParseFloat(results[0].Lon, 64)
	if errLat != nil || errLng != nil {
		return nil, &models.ExternalServiceError{Service: serviceName, Op: "forward", Err: fmt.Errorf("malformed coordinates %q,%q", results[0].Lat, results[0].Lon)}
	}
	coords := models.Coordinates{Lat: lat, Lng: lng, Source: models.SourceGeocoded}
	if !coords.Valid() {
		return nil, &models.ExternalServiceError{Service: serviceName, Op: "forward", Err: fmt.Errorf("coordinates out of range %f,%f", lat, lng)}
	}

	c.forwardCache.Set(cacheKey, coords, ttlcache.DefaultTTL)
	return &coords, nil
}

// Reverse переводит координаты в адрес для ручного ввода местоположения
func (c *Client) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	if !(models.Coordinates{Lat: lat, Lng: lng}).Valid() {
		return "", &models.ValidationError{Field: "coordinates", Message: "latitude must be in [-90,90] and longitude in [-180,180]"}
	}
	cacheKey := fmt.Sprintf("%.5f,%.5f", lat, lng)
	if item := c.reverseCache.Get(cacheKey); item != nil {
		return item.Value(), nil
	}

	params := url.Values{}
	params.Set("format", "json")
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))

	var result reverseResult
	if err := c.get(ctx, "/reverse", params, &result); err != nil {
		return "", &models.ExternalServiceError{Service: serviceName, Op: "reverse", Err: err}
	}
	if result.Error != "" || result.DisplayName == "" {
		return "", &models.ExternalServiceError{Service: serviceName, Op: "reverse", Err: ErrNoResult}
	}

	c.reverseCache.Set(cacheKey, result.DisplayName, ttlcache.DefaultTTL)
	return result.DisplayName, nil
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status code %d", resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
