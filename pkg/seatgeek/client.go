package seatgeek

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/xdoubleu/essentia/v2/pkg/communication/httptools"
)

const BaseURLRESTAPI = "https://api.seatgeek.com/2"

const perPage = 50

type client struct {
	logger   *slog.Logger
	clientID string
}

func New(logger *slog.Logger, clientID string) Client {
	return client{
		logger:   logger,
		clientID: clientID,
	}
}

func (client client) GetEvents(
	ctx context.Context,
	performerSlug string,
	city string,
) ([]Event, error) {
	query := url.Values{}
	query.Set("performers.slug", performerSlug)
	query.Set("venue.city", city)
	query.Set("per_page", fmt.Sprintf("%d", perPage))
	query.Set("sort", "datetime_local.asc")

	var response EventsResponse
	err := client.sendRequest(ctx, "events", query, &response)
	if err != nil {
		return nil, err
	}

	return response.Events, nil
}

func (client client) sendRequest(
	ctx context.Context,
	endpoint string,
	query url.Values,
	dst any,
) error {
	u, err := url.Parse(fmt.Sprintf("%s/%s", BaseURLRESTAPI, endpoint))
	if err != nil {
		return err
	}

	query.Set("client_id", client.clientID)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return err
	}

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return fmt.Errorf("seatgeek: unexpected status %d", res.StatusCode)
	}

	err = httptools.ReadJSON(res.Body, dst)
	if err != nil {
		return err
	}

	return nil
}
