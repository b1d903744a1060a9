package source

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/surveyadmin/backend/internal/analytics"
	"github.com/surveyadmin/backend/internal/domain/question"
)

// UpstreamSource fetches questions and answers from the survey API over HTTP.
type UpstreamSource struct {
	baseURL string       // e.g. "http://localhost:5000/api"
	client  *http.Client // reused across calls
}

// Compile-time check: *UpstreamSource satisfies the Fetcher interface.
var _ Fetcher = (*UpstreamSource)(nil)

// NewUpstreamSource creates a source that calls the given survey API.
func NewUpstreamSource(baseURL string, timeout time.Duration) *UpstreamSource {
	return &UpstreamSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

type upstreamPayload struct {
	Questions []map[string]any `json:"questions"`
	Answers   []map[string]any `json:"answers"`
}

type upstreamError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// FetchAll calls GET {base}/questions/all. Records are decoded leniently
// through the analytics normalizer, so one malformed record never fails the
// whole fetch.
func (u *UpstreamSource) FetchAll(ctx context.Context, scope Scope) (question.Dataset, error) {
	endpoint := fmt.Sprintf("%s/questions/all?admin=%t", u.baseURL, scope.Admin)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return question.Dataset{}, Errorf(KindOther, err, "failed to create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := u.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return question.Dataset{}, Errorf(KindOther, err, "fetch cancelled")
		}
		return question.Dataset{}, Errorf(KindNetwork, err, "network error: survey API unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNoContent:
		return question.Dataset{}, Errorf(KindEmpty, nil, "no questions")
	case resp.StatusCode == http.StatusNotFound:
		return question.Dataset{}, Errorf(KindNotFound, nil, "%s", errorMessage(resp))
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return question.Dataset{}, Errorf(KindOther, nil, "survey API returned status %d: %s", resp.StatusCode, errorMessage(resp))
	}

	var payload upstreamPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return question.Dataset{}, Errorf(KindOther, err, "failed to decode survey API response")
	}

	ds := question.Dataset{
		Questions: analytics.DecodeQuestions(payload.Questions),
		Answers:   analytics.DecodeAnswers(payload.Answers),
	}
	if !scope.Admin {
		ds.Answers = []question.Answer{}
	}
	return ds, nil
}

// errorMessage extracts a human readable message from an error response.
func errorMessage(resp *http.Response) string {
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(body) == 0 {
		return http.StatusText(resp.StatusCode)
	}
	var e upstreamError
	if json.Unmarshal(body, &e) == nil {
		if e.Message != "" {
			return e.Message
		}
		if e.Error != "" {
			return e.Error
		}
	}
	return strings.TrimSpace(string(body))
}
