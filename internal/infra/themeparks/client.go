// Package themeparks implements the upstream park API client used by the
// reference-data importer.
package themeparks

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"parkplan/config"
	"parkplan/internal/domain/entity"
	"parkplan/internal/domain/service"
	"parkplan/internal/errors"
)

const defaultTimeout = 15 * time.Second

// Entity types exposed by the upstream API.
const (
	entityTypePark       = "PARK"
	entityTypeAttraction = "ATTRACTION"
	entityTypeShow       = "SHOW"
	entityTypeRestaurant = "RESTAURANT"
	entityTypeHotel      = "HOTEL"
)

type client struct {
	baseURL        string
	destinationIDs []string
	httpClient     *http.Client
}

// NewClient creates a park-data provider for the configured destinations.
func NewClient(cfg *config.Config) (service.ParkDataProvider, error) {
	tp := cfg.ThemeParks
	if tp == nil || tp.BaseURL == "" {
		return nil, errors.New("theme-park API must be configured")
	}

	timeout := tp.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &client{
		baseURL:        strings.TrimRight(tp.BaseURL, "/"),
		destinationIDs: tp.DestinationIDs,
		httpClient:     &http.Client{Timeout: timeout},
	}, nil
}

// apiEntity is the generic entity envelope shared by destination and park
// children responses.
type apiEntity struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	EntityType string `json:"entityType"`
	Timezone   string `json:"timezone"`
	Location   *struct {
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	} `json:"location"`
}

type childrenResponse struct {
	Children []apiEntity `json:"children"`
}

type liveResponse struct {
	LiveData []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Queue  struct {
			Standby struct {
				WaitTime *int `json:"waitTime"`
			} `json:"STANDBY"`
		} `json:"queue"`
		LastUpdated time.Time `json:"lastUpdated"`
	} `json:"liveData"`
}

type scheduleResponse struct {
	Schedule []struct {
		Date        string    `json:"date"`
		Type        string    `json:"type"`
		OpeningTime time.Time `json:"openingTime"`
		ClosingTime time.Time `json:"closingTime"`
	} `json:"schedule"`
}

func (c *client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errors.Wrap(err, "build park API request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "call park API")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("park API returned status %d for %s", resp.StatusCode, path)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Wrap(err, "decode park API response")
	}

	return nil
}

func (c *client) FetchParks(ctx context.Context) ([]*entity.Park, error) {
	var parks []*entity.Park
	now := time.Now().UTC()

	for _, destID := range c.destinationIDs {
		var resp childrenResponse
		if err := c.get(ctx, "/destination/"+destID+"/children", &resp); err != nil {
			return nil, err
		}

		for _, child := range resp.Children {
			if child.EntityType != entityTypePark {
				continue
			}
			park := &entity.Park{
				ID:        child.ID,
				Name:      child.Name,
				Timezone:  child.Timezone,
				UpdatedAt: now,
			}
			if child.Location != nil {
				park.Latitude = child.Location.Latitude
				park.Longitude = child.Location.Longitude
			}
			parks = append(parks, park)
		}
	}

	return parks, nil
}

func (c *client) FetchAttractions(ctx context.Context, parkID string) ([]*entity.Attraction, error) {
	var resp childrenResponse
	if err := c.get(ctx, "/entity/"+parkID+"/children", &resp); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var attractions []*entity.Attraction
	for _, child := range resp.Children {
		var kind string
		switch child.EntityType {
		case entityTypeAttraction:
			kind = "ride"
		case entityTypeShow:
			kind = "show"
		default:
			continue
		}
		attractions = append(attractions, &entity.Attraction{
			ID:        child.ID,
			ParkID:    parkID,
			Name:      child.Name,
			Kind:      kind,
			UpdatedAt: now,
		})
	}

	return attractions, nil
}

func (c *client) FetchRestaurants(ctx context.Context, parkID string) ([]*entity.Restaurant, error) {
	var resp childrenResponse
	if err := c.get(ctx, "/entity/"+parkID+"/children", &resp); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	var restaurants []*entity.Restaurant
	for _, child := range resp.Children {
		if child.EntityType != entityTypeRestaurant {
			continue
		}
		restaurants = append(restaurants, &entity.Restaurant{
			ID:          child.ID,
			ParkID:      parkID,
			Name:        child.Name,
			ServiceType: "quick",
			UpdatedAt:   now,
		})
	}

	return restaurants, nil
}

func (c *client) FetchResorts(ctx context.Context) ([]*entity.Resort, error) {
	var resorts []*entity.Resort
	now := time.Now().UTC()

	for _, destID := range c.destinationIDs {
		var resp childrenResponse
		if err := c.get(ctx, "/destination/"+destID+"/children", &resp); err != nil {
			return nil, err
		}

		for _, child := range resp.Children {
			if child.EntityType != entityTypeHotel {
				continue
			}
			resorts = append(resorts, &entity.Resort{
				ID:        child.ID,
				Name:      child.Name,
				Category:  "moderate",
				UpdatedAt: now,
			})
		}
	}

	return resorts, nil
}

func (c *client) FetchParkHours(ctx context.Context, parkID string, days int) ([]*entity.ParkHours, error) {
	var resp scheduleResponse
	if err := c.get(ctx, "/entity/"+parkID+"/schedule", &resp); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	cutoff := now.AddDate(0, 0, days)

	var hours []*entity.ParkHours
	for _, day := range resp.Schedule {
		if day.Type != "OPERATING" {
			continue
		}
		date, err := time.Parse("2006-01-02", day.Date)
		if err != nil {
			continue
		}
		if days > 0 && date.After(cutoff) {
			continue
		}
		hours = append(hours, &entity.ParkHours{
			ParkID:    parkID,
			Date:      date,
			OpensAt:   day.OpeningTime,
			ClosesAt:  day.ClosingTime,
			UpdatedAt: now,
		})
	}

	return hours, nil
}

func (c *client) FetchWaitTimes(ctx context.Context, parkID string) ([]*entity.WaitTime, error) {
	var resp liveResponse
	if err := c.get(ctx, "/entity/"+parkID+"/live", &resp); err != nil {
		return nil, err
	}

	var waits []*entity.WaitTime
	for _, live := range resp.LiveData {
		minutes := 0
		if live.Queue.Standby.WaitTime != nil {
			minutes = *live.Queue.Standby.WaitTime
		}

		var status string
		switch live.Status {
		case "OPERATING":
			status = "operating"
		case "DOWN":
			status = "down"
		default:
			status = "closed"
		}

		waits = append(waits, &entity.WaitTime{
			AttractionID: live.ID,
			ParkID:       parkID,
			Minutes:      minutes,
			Status:       status,
			ObservedAt:   live.LastUpdated,
		})
	}

	return waits, nil
}
