package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/pathforge/pathforge/internal/config"
	"github.com/pathforge/pathforge/internal/logger"
	"github.com/pathforge/pathforge/internal/utils"
	"github.com/pathforge/pathforge/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed)
// for use in the Authorization header of all subsequent requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the registration payload to
// POST /api/auth/register, stores the bearer token from the Authorization
// response header, and returns the created user summary.
func (h *httpServerAdapter) Register(ctx context.Context, req models.RegisterRequest) (models.UserSummary, error) {
	var body models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/register")
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSummary{}, err
	}

	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.UserSummary{}, fmt.Errorf("%w: register response: %v", ErrSchema, err)
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return body.User, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login, stores the bearer token from the Authorization
// response header, and returns the authenticated user summary.
func (h *httpServerAdapter) Login(ctx context.Context, req models.LoginRequest) (models.UserSummary, error) {
	var body models.AuthResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post("/api/auth/login")
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.UserSummary{}, err
	}

	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.UserSummary{}, fmt.Errorf("%w: login response: %v", ErrSchema, err)
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.UserSummary{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return body.User, nil
}

// SaveGoal implements [ServerAdapter].
func (h *httpServerAdapter) SaveGoal(ctx context.Context, req models.GoalRequest) error {
	return h.postJSON(ctx, "/api/onboarding/goal", req)
}

// SaveSkills implements [ServerAdapter].
func (h *httpServerAdapter) SaveSkills(ctx context.Context, req models.SkillsRequest) error {
	return h.postJSON(ctx, "/api/onboarding/skills", req)
}

// SavePreferences implements [ServerAdapter].
func (h *httpServerAdapter) SavePreferences(ctx context.Context, req models.PreferencesRequest) error {
	return h.postJSON(ctx, "/api/onboarding/preferences", req)
}

// OnboardingStatus implements [ServerAdapter].
func (h *httpServerAdapter) OnboardingStatus(ctx context.Context) (models.StatusResponse, error) {
	var body models.StatusResponse

	resp, err := h.authorized().
		SetContext(ctx).
		Get("/api/onboarding/status")
	if err != nil {
		return models.StatusResponse{}, fmt.Errorf("onboarding status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.StatusResponse{}, err
	}

	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.StatusResponse{}, fmt.Errorf("%w: onboarding status response: %v", ErrSchema, err)
	}

	return body, nil
}

// GeneratePath implements [ServerAdapter]. The request carries no body.
func (h *httpServerAdapter) GeneratePath(ctx context.Context) error {
	resp, err := h.authorized().
		SetContext(ctx).
		Post("/api/ai/generate-path")
	if err != nil {
		return fmt.Errorf("generate path request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetPath implements [ServerAdapter]. The response body is decoded into the
// typed path model; a 2xx body that does not match the expected shape
// surfaces [ErrSchema].
func (h *httpServerAdapter) GetPath(ctx context.Context) (models.LearningPath, error) {
	var body models.PathResponse

	resp, err := h.authorized().
		SetContext(ctx).
		Get("/api/ai/path")
	if err != nil {
		return models.LearningPath{}, fmt.Errorf("get path request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LearningPath{}, err
	}

	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.LearningPath{}, fmt.Errorf("%w: path response: %v", ErrSchema, err)
	}
	if body.Path.Title == "" || len(body.Path.Curriculum.Modules) == 0 {
		return models.LearningPath{}, fmt.Errorf("%w: path response missing title or modules", ErrSchema)
	}

	return body.Path, nil
}

func (h *httpServerAdapter) postJSON(ctx context.Context, path string, payload any) error {
	resp, err := h.authorized().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(payload).
		Post(path)
	if err != nil {
		return fmt.Errorf("post %s: %w", path, err)
	}

	return mapHTTPError(resp)
}

// authorized returns a request with the Authorization header set when a
// bearer token is present.
func (h *httpServerAdapter) authorized() *resty.Request {
	req := h.client.R()
	if h.token != "" {
		req.SetHeader("Authorization", "Bearer "+h.token)
	}
	return req
}
