// Package trends produces free text commentary over the raw feeds by
// asking a chat completion model to look for patterns. The output is
// passed through untouched; nothing downstream acts on it.
package trends

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"

	"github.com/Ramsey-B/fern/pkg/httpclient"
	"github.com/Ramsey-B/fern/pkg/models"
	"github.com/Ramsey-B/fern/pkg/tracing"
)

const systemPrompt = "You are an AI project management assistant that analyzes project data to identify trends and patterns."

const promptTemplate = `Analyze the following project data from various submissions to google sheets, and identify any trends or potential issues. Be as detailed as possible, and call out areas of improvement.

New Project Submissions: %s
Version Upgrade Submissions: %s
Project Estimation Submissions: %s
Project Approval Submissions: %s
Project Delivery Submissions: %s
Project Feedback Submissions: %s

Based on this data, identify trends such as increasing delays in specific project stages or recurring client feedback themes.
Summarize your findings.`

// Config points the client at an OpenAI compatible completion API.
type Config struct {
	Enabled bool
	BaseURL string
	APIKey  string
	Model   string
}

// Client asks the model for a trend summary.
type Client struct {
	cfg    Config
	client *httpclient.Client
	logger ectologger.Logger
}

// NewClient creates a new trend summary client.
func NewClient(cfg Config, client *httpclient.Client, logger ectologger.Logger) *Client {
	return &Client{
		cfg:    cfg,
		client: client,
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// Summarize serializes the six raw feeds into the analysis prompt and
// returns the model's commentary.
func (c *Client) Summarize(ctx context.Context, data models.AllSubmissions) (string, error) {
	ctx, span := tracing.StartSpan(ctx, "trends.Summarize")
	defer span.End()

	if !c.cfg.Enabled {
		return "", httperror.NewHTTPError(http.StatusServiceUnavailable, "trend summaries are disabled")
	}

	prompt, err := buildPrompt(data)
	if err != nil {
		return "", fmt.Errorf("failed to build trend prompt: %w", err)
	}

	request := chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		},
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	headers := map[string]string{"Authorization": "Bearer " + c.cfg.APIKey}

	resp, err := c.client.PostJSON(ctx, url, request, headers)
	if err != nil {
		return "", fmt.Errorf("trend completion request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		c.logger.WithContext(ctx).WithField("status", resp.StatusCode).Error("trend completion returned non-OK status")
		return "", httperror.NewHTTPErrorf(http.StatusBadGateway, "trend model returned status %d", resp.StatusCode)
	}

	var completion chatResponse
	if err := json.Unmarshal(resp.Body, &completion); err != nil {
		return "", fmt.Errorf("failed to decode trend completion: %w", err)
	}
	if len(completion.Choices) == 0 {
		return "", httperror.NewHTTPError(http.StatusBadGateway, "trend model returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

func buildPrompt(data models.AllSubmissions) (string, error) {
	sections := make([]string, 0, len(models.Feeds))
	for _, lists := range []any{
		data.NewProjects,
		data.VersionUpgrades,
		data.Estimations,
		data.Approvals,
		data.Deliveries,
		data.Feedbacks,
	} {
		serialized, err := json.Marshal(lists)
		if err != nil {
			return "", err
		}
		sections = append(sections, string(serialized))
	}

	return fmt.Sprintf(promptTemplate,
		sections[0], sections[1], sections[2], sections[3], sections[4], sections[5]), nil
}
