// Package metadata fetches movie descriptive data from the OMDb lookup
// service.
package metadata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"movie-tracker/internal/apperr"
	"movie-tracker/pkg/utils"

	"go.uber.org/zap"
)

// Placeholder values used when OMDb omits a field or reports it as N/A.
const (
	PlaceholderTitle  = "Title not available"
	PlaceholderPoster = "Poster not available"
	PlaceholderPlot   = "Plot not available"
)

// MovieInfo is the normalized lookup result.
type MovieInfo struct {
	Title  string
	Year   int
	Rating float64
	Poster string
	Plot   string
}

// Fetcher is the lookup contract; the movie service depends on this so tests
// can stub the external call.
type Fetcher interface {
	Fetch(ctx context.Context, title string) (*MovieInfo, error)
}

// omdbResponse mirrors the subset of the OMDb payload we consume. All fields
// arrive as strings, including Year and imdbRating.
type omdbResponse struct {
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	IMDBRating string `json:"imdbRating"`
	Poster     string `json:"Poster"`
	Plot       string `json:"Plot"`
	Response   string `json:"Response"`
	Error      string `json:"Error"`
}

type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *zap.Logger
}

func NewClient(config utils.OMDBConfig, log *zap.Logger) *Client {
	timeout := time.Duration(config.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	return &Client{
		baseURL:    config.BaseURL,
		apiKey:     config.APIKey,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With(zap.String("client", "omdb")),
	}
}

// Fetch looks a title up on OMDb. Missing fields fall back to placeholder
// values instead of failing; transport, decode, and lookup failures surface
// as an external-service error.
func (c *Client) Fetch(ctx context.Context, title string) (*MovieInfo, error) {
	reqURL := fmt.Sprintf("%s?t=%s&apikey=%s&plot=full",
		c.baseURL, url.QueryEscape(title), url.QueryEscape(c.apiKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindExternalService, "movie lookup failed", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("OMDb request failed", zap.Error(err), zap.String("title", title))
		return nil, apperr.Wrap(apperr.KindExternalService, "movie lookup failed", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Error("OMDb returned non-OK status",
			zap.Int("status", resp.StatusCode),
			zap.String("title", title),
		)
		return nil, apperr.New(apperr.KindExternalService, "movie lookup failed")
	}

	var payload omdbResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		c.log.Error("Failed to decode OMDb response", zap.Error(err), zap.String("title", title))
		return nil, apperr.Wrap(apperr.KindExternalService, "movie lookup failed", err)
	}

	if payload.Response == "False" {
		c.log.Warn("OMDb lookup miss",
			zap.String("title", title),
			zap.String("omdb_error", payload.Error),
		)
		return nil, apperr.New(apperr.KindExternalService, "movie not found in metadata service")
	}

	info := &MovieInfo{
		Title:  fieldOrDefault(payload.Title, PlaceholderTitle),
		Year:   utils.ParseYear(payload.Year),
		Rating: utils.ParseFloat(naToEmpty(payload.IMDBRating), 0.0),
		Poster: fieldOrDefault(payload.Poster, PlaceholderPoster),
		Plot:   fieldOrDefault(payload.Plot, PlaceholderPlot),
	}

	c.log.Debug("OMDb lookup hit",
		zap.String("title", info.Title),
		zap.Int("year", info.Year),
		zap.Float64("rating", info.Rating),
	)

	return info, nil
}

func fieldOrDefault(value, fallback string) string {
	if value == "" || value == "N/A" {
		return fallback
	}
	return value
}

func naToEmpty(value string) string {
	if value == "N/A" {
		return ""
	}
	return value
}
