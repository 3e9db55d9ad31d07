package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"ijara-backend/internal/config"
	"ijara-backend/internal/logger"
)

// EskizClient sends SMS through the Eskiz gateway (notify.eskiz.uz).
// Tokens obtained from the auth endpoint are cached and refreshed on 401.
type EskizClient struct {
	baseURL    string
	email      string
	password   string
	from       string
	httpClient *http.Client

	mu    sync.Mutex
	token string
}

func NewEskizClient(cfg config.EskizConfig) *EskizClient {
	return &EskizClient{
		baseURL:    cfg.BaseURL,
		email:      cfg.Email,
		password:   cfg.Password,
		from:       cfg.From,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *EskizClient) SendSMS(ctx context.Context, phone, message string) error {
	token, err := c.getToken(ctx, false)
	if err != nil {
		return err
	}

	status, err := c.send(ctx, token, phone, message)
	if err != nil {
		return err
	}
	if status == http.StatusUnauthorized {
		// Token expired server side. Re-login once and retry.
		token, err = c.getToken(ctx, true)
		if err != nil {
			return err
		}
		status, err = c.send(ctx, token, phone, message)
		if err != nil {
			return err
		}
	}
	if status < 200 || status >= 300 {
		return fmt.Errorf("eskiz send failed with status %d", status)
	}

	logger.Info("SMS sent", "phone", phone)
	return nil
}

func (c *EskizClient) send(ctx context.Context, token, phone, message string) (int, error) {
	payload, err := json.Marshal(map[string]string{
		"mobile_phone": phone,
		"message":      message,
		"from":         c.from,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to encode sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/message/sms/send", bytes.NewReader(payload))
	if err != nil {
		return 0, fmt.Errorf("failed to build sms request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("failed to send sms: %w", err)
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode, nil
}

func (c *EskizClient) getToken(ctx context.Context, force bool) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && !force {
		return c.token, nil
	}

	payload, err := json.Marshal(map[string]string{
		"email":    c.email,
		"password": c.password,
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode login payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/api/auth/login", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("eskiz login request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read login response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("eskiz login failed with status %d", resp.StatusCode)
	}

	var result struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("failed to parse login response: %w", err)
	}
	if result.Data.Token == "" {
		return "", fmt.Errorf("eskiz login returned empty token")
	}

	c.token = result.Data.Token
	return c.token, nil
}
