package nutrislice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/google/go-querystring/query"
)

// baseURLTemplate is the per-district API host. The district slug is the
// top-level key for all queries.
const baseURLTemplate = "https://%s.api.nutrislice.com"

// DefaultTimeout bounds each menu request when the caller does not
// supply an http.Client of its own.
const DefaultTimeout = 10 * time.Second

// requestOptions are the query parameters common to all menu API calls,
// encoded with go-querystring.
type requestOptions struct {
	Format string `url:"format,omitempty"`
}

// Client is a wrapper for making calls to a district's Nutrislice API.
type Client struct {
	httpClient *http.Client
	baseURL    string
	district   string
	log        *slog.Logger
}

// NewClient creates a new Nutrislice API client for a district. If no
// httpClient is provided a client with a 10 second timeout is used.
func NewClient(district string, httpClient *http.Client, logger *slog.Logger) *Client {

	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}

	// Logger setup.
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(
			os.Stdout,
			&slog.HandlerOptions{Level: slog.LevelDebug},
		))
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    fmt.Sprintf(baseURLTemplate, district),
		district:   district,
		log:        logger,
	}
}

// District reports the district slug this client was built for.
func (c *Client) District() string {
	return c.district
}

// GetSchools fetches the list of schools for the client's district.
func (c *Client) GetSchools(ctx context.Context) ([]School, error) {

	requestURL := fmt.Sprintf("%s/menu/api/schools", c.baseURL)
	c.log.Debug(fmt.Sprintf("GetSchools request %v", requestURL))

	req, err := c.newRequest(ctx, requestURL)
	if err != nil {
		c.log.Error(fmt.Sprintf("GetSchools: request error: %v", err))
		return nil, err
	}

	var schools []School
	if _, err := do(c, req, &schools); err != nil {
		c.log.Error(fmt.Sprintf("GetSchools: failed to execute request: %v", err))
		return nil, fmt.Errorf("failed to fetch schools for district %q: %w", c.district, err)
	}

	c.log.Info(fmt.Sprintf("GetSchools: retrieved %d schools", len(schools)))
	return schools, nil
}

// GetWeekMenu fetches the menu week containing date for a school and meal
// type. The response covers the whole week; callers extract the day or
// days they need.
func (c *Client) GetWeekMenu(ctx context.Context, school string, meal MealType, date time.Time) (WeekMenu, error) {

	requestURL := c.weekMenuURL(school, meal, date)
	c.log.Debug(fmt.Sprintf("GetWeekMenu request %v", requestURL))

	req, err := c.newRequest(ctx, requestURL)
	if err != nil {
		c.log.Error(fmt.Sprintf("GetWeekMenu: request error: %v", err))
		return WeekMenu{}, err
	}

	var week WeekMenu
	if _, err := do(c, req, &week); err != nil {
		c.log.Error(fmt.Sprintf("GetWeekMenu: failed to execute request: %v", err))
		return WeekMenu{}, fmt.Errorf("failed to fetch %s menu: %w", meal, err)
	}

	c.log.Info(fmt.Sprintf("GetWeekMenu: retrieved %d days of %s menus", len(week.Days), meal))
	return week, nil
}

// GetWeekMenuRaw fetches a menu week and returns the upstream response
// body verbatim, for debugging. The body is not decoded beyond a status
// check and its shape is not guaranteed stable.
func (c *Client) GetWeekMenuRaw(ctx context.Context, school string, meal MealType, date time.Time) ([]byte, error) {

	requestURL := c.weekMenuURL(school, meal, date)
	c.log.Debug(fmt.Sprintf("GetWeekMenuRaw request %v", requestURL))

	req, err := c.newRequest(ctx, requestURL)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}
	return body, nil
}

// weekMenuURL builds the menu week URL for a school, meal type and date.
func (c *Client) weekMenuURL(school string, meal MealType, date time.Time) string {
	return fmt.Sprintf("%s/menu/api/weeks/school/%s/menu-type/%s/%d/%02d/%02d/",
		c.baseURL, school, meal, date.Year(), date.Month(), date.Day())
}

// newRequest is a helper to create a new GET request with common headers
// and query parameters.
func (c *Client) newRequest(ctx context.Context, requestURL string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	params, err := query.Values(requestOptions{Format: "json"})
	if err != nil {
		return nil, fmt.Errorf("failed to encode query parameters: %w", err)
	}
	req.URL.RawQuery = params.Encode()
	req.Header.Set("Accept", "application/json")

	return req, nil
}

// do is a helper to execute an HTTP request and decode the JSON
// response.
func do[T any](c *Client, req *http.Request, v *T) (*http.Response, error) {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return nil, fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return resp, nil
}
