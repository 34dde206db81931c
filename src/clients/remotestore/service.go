// Package remotestore is the REST client for the remote record store the
// sync engine reconciles against. The store is schema-agnostic: it serves
// and accepts rows of {id, updatedAt, payload} per client and kind.
package remotestore

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"tracker/src/config"
	"tracker/src/models"
	"tracker/src/utils"
	"tracker/src/utils/requests"
)

type RemoteStoreClientI interface {
	ListRecords(token, clientID, kind string) ([]models.Record, error)
	UpsertRecords(token string, records []models.Record) error
	DeleteRecords(token string, ids []string) error
}

type RemoteStoreClient struct {
	API     *requests.ExternalAPIService
	BaseURL string
}

// NewClient creates a new instance of RemoteStoreClient
func NewClient(cfg *config.Config) *RemoteStoreClient {
	return &RemoteStoreClient{
		API:     requests.NewExternalAPIService(),
		BaseURL: cfg.ExternalClients.RemoteStore.BaseURL,
	}
}

// ListRecords fetches the remote snapshot for one client, optionally
// filtered by record kind.
func (c *RemoteStoreClient) ListRecords(token, clientID, kind string) ([]models.Record, error) {
	endpoint := fmt.Sprintf("%s/v1/records", c.BaseURL)

	params := url.Values{}
	params.Add("clientId", clientID)
	if kind != "" {
		params.Add("kind", kind)
	}

	resp, err := c.API.Get(endpoint, token, params)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, utils.NewHTTPError(resp.StatusCode, "remote store list failed: "+resp.Status)
	}

	responseBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var listResponse ListRecordsResponse
	if err := json.Unmarshal(responseBody, &listResponse); err != nil {
		return nil, err
	}
	return listResponse.Records, nil
}

// UpsertRecords pushes records to the remote store in one bulk request.
func (c *RemoteStoreClient) UpsertRecords(token string, records []models.Record) error {
	if len(records) == 0 {
		return nil
	}
	endpoint := fmt.Sprintf("%s/v1/records:upsert", c.BaseURL)

	resp, err := c.API.Post(endpoint, token, nil, UpsertRecordsRequest{Records: records})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode > http.StatusCreated {
		return utils.NewHTTPError(resp.StatusCode, "remote store upsert failed: "+resp.Status)
	}
	return nil
}

// DeleteRecords removes records from the remote store by id.
func (c *RemoteStoreClient) DeleteRecords(token string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	endpoint := fmt.Sprintf("%s/v1/records:delete", c.BaseURL)

	resp, err := c.API.Post(endpoint, token, nil, DeleteRecordsRequest{IDs: ids})
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode > http.StatusCreated {
		return utils.NewHTTPError(resp.StatusCode, "remote store delete failed: "+resp.Status)
	}
	return nil
}
