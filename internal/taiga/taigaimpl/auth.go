package taigaimpl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	apperrors "github.com/ydrgzm/taiga-cfd-bot/pkg/errors"
)

type tokenFile struct {
	AuthToken string `json:"auth_token"`
	Refresh   string `json:"refresh"`
	FullName  string `json:"full_name,omitempty"`
}

// Login establishes an authenticated session, reusing a previously persisted
// token when it is still valid and falling back to password authentication.
func (t *TaigaImpl) Login(ctx context.Context) error {
	if tok, err := t.loadToken(); err == nil {
		t.token = tok.AuthToken
		if t.validateToken(ctx) {
			t.Logger.Info("Logged in using persisted token", "path", t.Config.Taiga.TokenPath)
			return nil
		}
		t.Logger.Warn("Persisted token rejected, attempting password login")
		t.token = ""
	}

	if t.Config.Taiga.Username == "" || t.Config.Taiga.Password == "" {
		return fmt.Errorf("no valid token and no credentials configured: %w", apperrors.ErrUnauthorized)
	}

	payload, err := json.Marshal(map[string]string{
		"type":     "normal",
		"username": t.Config.Taiga.Username,
		"password": t.Config.Taiga.Password,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		t.Config.Taiga.BaseURL+"/api/v1/auth", bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("auth request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("auth failed with status %d: %w", resp.StatusCode, apperrors.ErrUnauthorized)
	}

	var body struct {
		AuthToken string `json:"auth_token"`
		Refresh   string `json:"refresh"`
		FullName  string `json:"full_name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode auth response: %w", err)
	}

	t.token = body.AuthToken
	t.Logger.Info("Logged in with credentials", "user", body.FullName)

	if err := t.saveToken(tokenFile{AuthToken: body.AuthToken, Refresh: body.Refresh, FullName: body.FullName}); err != nil {
		t.Logger.Warn("Failed to persist auth token", "error", err)
	}
	return nil
}

func (t *TaigaImpl) validateToken(ctx context.Context) bool {
	var me struct {
		ID int `json:"id"`
	}
	if err := t.get(ctx, "/api/v1/users/me", nil, &me); err != nil {
		return false
	}
	return me.ID != 0
}

func (t *TaigaImpl) loadToken() (tokenFile, error) {
	var tok tokenFile

	data, err := os.ReadFile(t.Config.Taiga.TokenPath)
	if err != nil {
		return tok, err
	}
	if err := json.Unmarshal(data, &tok); err != nil {
		return tok, fmt.Errorf("corrupt token file: %w", err)
	}
	if tok.AuthToken == "" {
		return tok, fmt.Errorf("token file has no auth_token: %w", apperrors.ErrInvalidInput)
	}
	return tok, nil
}

func (t *TaigaImpl) saveToken(tok tokenFile) error {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(t.Config.Taiga.TokenPath, data, 0o600)
}
