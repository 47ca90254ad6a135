package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

// DateFormat is the layout Google Calendar uses for all-day events.
const DateFormat = "2006-01-02"

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClientFromCredentialsFile creates a Calendar client from a credentials
// JSON file. OAuth desktop credentials also need the token saved by
// cmd/gcal-auth at tokenPath.
func NewClientFromCredentialsFile(ctx context.Context, credentialsPath, tokenPath string) (*Client, error) {
	data, err := os.ReadFile(credentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials,
// trying a service account first and OAuth desktop credentials second.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err == nil {
		return newClient(ctx, jwtConfig.TokenSource(ctx))
	}

	oauthConfig, oauthErr := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if oauthErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tok, err := ReadToken(tokenPath)
	if err != nil {
		return nil, fmt.Errorf("oauth desktop credentials need a saved token: %w", err)
	}
	return newClient(ctx, oauthConfig.TokenSource(ctx, tok))
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

func newClient(ctx context.Context, ts oauth2.TokenSource) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithTokenSource(ts))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// ReadToken loads an OAuth token written by WriteToken.
func ReadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token %s: %w", path, err)
	}
	return &tok, nil
}

// WriteToken saves tok to path with owner-only permissions.
func WriteToken(path string, tok *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}
	defer f.Close()
	return json.NewEncoder(f).Encode(tok)
}

// CreateAllDayEvent creates an event covering req.Date.
func (c *Client) CreateAllDayEvent(ctx context.Context, req CreateAllDayEventRequest) (*Event, error) {
	start := req.Date.Format(DateFormat)
	// All-day end dates are exclusive.
	end := req.Date.AddDate(0, 0, 1).Format(DateFormat)

	event := &calendar.Event{
		Summary:     req.Summary,
		Description: req.Description,
		Start:       &calendar.EventDateTime{Date: start},
		End:         &calendar.EventDateTime{Date: end},
	}

	calendarID := req.CalendarID
	if calendarID == "" {
		calendarID = "primary"
	}

	created, err := c.service.Events.Insert(calendarID, event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:       created.Id,
		Summary:  created.Summary,
		HtmlLink: created.HtmlLink,
		Date:     start,
	}, nil
}
