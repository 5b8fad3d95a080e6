// Package inference talks to the model sidecar that extracts speaker
// embeddings and scores liveness. It implements biometrics.Extractor and
// biometrics.LivenessClassifier.
package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/dmitrijs2005/voxkeeper/internal/biometrics"
	"github.com/dmitrijs2005/voxkeeper/internal/common"
	"github.com/go-resty/resty/v2"
)

const (
	embedPath    = "/embed"
	livenessPath = "/liveness"
)

type Client struct {
	client *resty.Client
	cutoff float64
}

// New returns a client for the sidecar at baseURL. A bonafide probability
// at or above cutoff is read as a bonafide verdict.
func New(baseURL string, timeout time.Duration, cutoff float64) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/octet-stream").
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &Client{client: c, cutoff: cutoff}
}

type embedResponse struct {
	Embedding json.RawMessage `json:"embedding"`
}

type livenessResponse struct {
	BonafideProbability *float64 `json:"bonafide_probability"`
}

// Extract posts audio to the embedding endpoint. The sidecar may answer
// with a single vector or a batch of rows.
func (c *Client) Extract(ctx context.Context, audio []byte) (biometrics.Batch, error) {
	var er embedResponse
	if err := c.post(ctx, embedPath, audio, &er); err != nil {
		return nil, err
	}

	var batch biometrics.Batch
	if err := json.Unmarshal(er.Embedding, &batch); err != nil {
		var v biometrics.Vector
		if err := json.Unmarshal(er.Embedding, &v); err != nil {
			return nil, fmt.Errorf("%w: decode embedding: %v", common.ErrProcessingFailure, err)
		}
		batch = v.AsBatch()
	}
	if len(batch) == 0 || len(batch[0]) == 0 {
		return nil, fmt.Errorf("%w: empty embedding", common.ErrProcessingFailure)
	}
	return batch, nil
}

// Classify posts audio to the liveness endpoint and thresholds the result.
func (c *Client) Classify(ctx context.Context, audio []byte) (biometrics.Verdict, error) {
	var lr livenessResponse
	if err := c.post(ctx, livenessPath, audio, &lr); err != nil {
		return "", err
	}
	if lr.BonafideProbability == nil {
		return "", fmt.Errorf("%w: liveness response has no probability", common.ErrProcessingFailure)
	}
	return biometrics.VerdictFromProbability(*lr.BonafideProbability, c.cutoff), nil
}

func (c *Client) post(ctx context.Context, path string, audio []byte, out any) error {
	resp, err := c.client.R().
		SetContext(ctx).
		SetBody(audio).
		Post(path)
	if err != nil {
		return fmt.Errorf("%w: inference request: %v", common.ErrProcessingFailure, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return fmt.Errorf("%w: inference status %d: %s", common.ErrProcessingFailure, resp.StatusCode(), resp.String())
	}
	if err := json.Unmarshal(resp.Body(), out); err != nil {
		return fmt.Errorf("%w: decode response: %v", common.ErrProcessingFailure, err)
	}
	return nil
}
