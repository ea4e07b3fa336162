// Package places is a stateless forwarding client for the external places
// API: nearby restaurant search and photo fetching. It holds no quota
// tracking, no cache and no retry; each call is a single best-effort forward.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"platefinder/internal/models"
)

const (
	defaultBaseURL     = "https://maps.googleapis.com/maps/api/place"
	defaultRadius      = 1000
	defaultPlaceType   = "restaurant"
	maxPhotoReferences = 5
	photoMaxWidth      = 800
	photoFetchTimeout  = 30 * time.Second
)

// Client calls the external places API.
type Client struct {
	apiKey      string
	baseURL     string
	httpClient  *http.Client
	photoClient *http.Client
}

// NewClient creates a places client with production endpoints.
func NewClient(apiKey string) *Client {
	return NewClientWithOptions(apiKey, defaultBaseURL, nil)
}

// NewClientWithOptions allows overriding the base URL and HTTP client (used for tests).
func NewClientWithOptions(apiKey, baseURL string, httpClient *http.Client) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = defaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		apiKey:     apiKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		// Photo fetches carry their own upstream timeout.
		photoClient: &http.Client{Timeout: photoFetchTimeout},
	}
}

// NearbySearchInput are the search parameters. Radius and PlaceType fall back
// to 1000 meters and "restaurant" when unset.
type NearbySearchInput struct {
	Latitude  float64
	Longitude float64
	Radius    int
	PlaceType string
}

// Restaurant is the normalized record returned to clients for each search hit.
type Restaurant struct {
	ID               string   `json:"id"`
	PlaceID          string   `json:"place_id"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	Rating           float64  `json:"rating"`
	UserRatingsTotal int      `json:"user_ratings_total"`
	PhotoReferences  []string `json:"photo_references"`
	Latitude         float64  `json:"latitude"`
	Longitude        float64  `json:"longitude"`
}

// Photo is a proxied photo payload with the upstream content type preserved.
type Photo struct {
	Data        []byte
	ContentType string
}

// NearbySearch forwards a geo search to the external API and reshapes each
// result. Any upstream status other than "OK" becomes an UpstreamError whose
// message carries the status text and optional error message.
func (c *Client) NearbySearch(ctx context.Context, in NearbySearchInput) ([]Restaurant, error) {
	if c.apiKey == "" {
		return nil, models.NewUpstreamError("places API key is not configured", nil)
	}

	radius := in.Radius
	if radius <= 0 {
		radius = defaultRadius
	}
	placeType := in.PlaceType
	if placeType == "" {
		placeType = defaultPlaceType
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", in.Latitude, in.Longitude))
	params.Set("radius", strconv.Itoa(radius))
	params.Set("type", placeType)
	params.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/nearbysearch/json?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, models.NewUpstreamError("failed to build nearby search request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, models.NewUpstreamError("nearby search request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, models.NewUpstreamError(
			fmt.Sprintf("nearby search returned HTTP status %d", resp.StatusCode), nil)
	}

	var payload nearbySearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, models.NewUpstreamError("failed to decode nearby search response", err)
	}

	if payload.Status != "OK" {
		msg := fmt.Sprintf("places API error: %s", payload.Status)
		if payload.ErrorMessage != "" {
			msg += " - " + payload.ErrorMessage
		}
		return nil, models.NewUpstreamError(msg, nil)
	}

	restaurants := make([]Restaurant, 0, len(payload.Results))
	for _, place := range payload.Results {
		var refs []string
		for i, photo := range place.Photos {
			if i >= maxPhotoReferences {
				break
			}
			refs = append(refs, photo.PhotoReference)
		}

		restaurants = append(restaurants, Restaurant{
			ID:               place.PlaceID,
			PlaceID:          place.PlaceID,
			Name:             place.Name,
			Address:          place.Vicinity,
			Rating:           place.Rating,
			UserRatingsTotal: place.UserRatingsTotal,
			PhotoReferences:  refs,
			Latitude:         place.Geometry.Location.Lat,
			Longitude:        place.Geometry.Location.Lng,
		})
	}
	return restaurants, nil
}

// FetchPhoto forwards one photo reference to the external photo endpoint and
// returns the binary response unmodified. The call is bounded by a 30 second
// timeout; any non-200 response becomes a generic fetch-failure error.
func (c *Client) FetchPhoto(ctx context.Context, photoReference string) (*Photo, error) {
	if photoReference == "" {
		return nil, models.NewValidationError("Photo reference is required")
	}
	if c.apiKey == "" {
		return nil, models.NewUpstreamError("places API key is not configured", nil)
	}

	params := url.Values{}
	params.Set("maxwidth", strconv.Itoa(photoMaxWidth))
	params.Set("photoreference", photoReference)
	params.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/photo?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, models.NewUpstreamError("failed to build photo request", err)
	}

	resp, err := c.photoClient.Do(req)
	if err != nil {
		return nil, models.NewUpstreamError("photo request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, models.NewUpstreamError("failed to fetch image from places API", nil)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.NewUpstreamError("failed to read photo response", err)
	}

	return &Photo{
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

type nearbySearchResponse struct {
	Status       string              `json:"status"`
	ErrorMessage string              `json:"error_message,omitempty"`
	Results      []nearbyPlaceResult `json:"results"`
}

type nearbyPlaceResult struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	Vicinity         string        `json:"vicinity"`
	Rating           float64       `json:"rating"`
	UserRatingsTotal int           `json:"user_ratings_total"`
	Photos           []placePhoto  `json:"photos"`
	Geometry         placeGeometry `json:"geometry"`
}

type placePhoto struct {
	PhotoReference string `json:"photo_reference"`
}

type placeGeometry struct {
	Location placeLocation `json:"location"`
}

type placeLocation struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}
