package mocks

import (
	"context"

	"events.ourphilly.org/pkg/seatgeek"
)

type MockSeatGeekClient struct {
	Err    error
	Events []seatgeek.Event
	// Block delays the response until the context expires so tests can
	// exercise the sports timeout.
	Block bool
}

func NewMockSeatGeekClient() *MockSeatGeekClient {
	lat := 39.9057
	lon := -75.1666

	return &MockSeatGeekClient{
		Events: []seatgeek.Event{
			{
				ID:            6_000_001,
				Title:         "Philadelphia Phillies at New York Mets",
				ShortTitle:    "Phillies at Mets",
				URL:           "https://seatgeek.com/e/6000001",
				DatetimeLocal: "2025-06-07T19:05:00",
				Performers: []seatgeek.Performer{
					{
						ID:       10,
						Name:     "New York Mets",
						HomeTeam: true,
					},
					{
						ID:   11,
						Name: "Philadelphia Phillies",
					},
				},
				Venue: seatgeek.Venue{
					Name:  "Citizens Bank Park",
					City:  "Philadelphia",
					State: "PA",
					Location: seatgeek.Geo{
						Lat: &lat,
						Lon: &lon,
					},
				},
			},
		},
	}
}

func (client *MockSeatGeekClient) GetEvents(
	ctx context.Context,
	_ string,
	_ string,
) ([]seatgeek.Event, error) {
	if client.Block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if client.Err != nil {
		return nil, client.Err
	}
	return client.Events, nil
}
