package payments

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cietz/laranjinhao/internal/domain/entities"
)

const gatewayRequestTimeout = 15 * time.Second

// newGatewayHTTPClient builds the tuned client shared by the raw-HTTP
// adapters. The explicit timeout is a hardening choice: provider outages must
// not pin request handlers on the HTTP client's defaults.
func newGatewayHTTPClient() *http.Client {
	return &http.Client{
		Timeout: gatewayRequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 20,
			IdleConnTimeout:     90 * time.Second,
			TLSHandshakeTimeout: 10 * time.Second,
		},
	}
}

// apiClient is the JSON client each raw-HTTP gateway adapter wraps.
type apiClient struct {
	providerName string
	baseURL      string
	authorize    func(*http.Request)
	httpClient   *http.Client
}

func newAPIClient(providerName, baseURL string, authorize func(*http.Request)) *apiClient {
	return &apiClient{
		providerName: providerName,
		baseURL:      baseURL,
		authorize:    authorize,
		httpClient:   newGatewayHTTPClient(),
	}
}

// doJSON issues one call and returns the raw response body on 2xx. Transport
// failures and non-success statuses come back as *entities.GatewayTransportError
// with the remote body preserved.
func (c *apiClient) doJSON(ctx context.Context, method, path string, body any) (json.RawMessage, error) {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return nil, &entities.GatewayTransportError{Message: fmt.Sprintf("marshal request: %v", err)}
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return nil, &entities.GatewayTransportError{Message: fmt.Sprintf("build request: %v", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.authorize != nil {
		c.authorize(req)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &entities.GatewayTransportError{Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &entities.GatewayTransportError{StatusCode: resp.StatusCode, Message: fmt.Sprintf("read response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, c.classifyHTTPError(resp.StatusCode, respBody)
	}
	return respBody, nil
}

// classifyHTTPError maps known provider status codes to user-facing messages
// (in the deployment's language) and keeps the raw body for diagnostics.
func (c *apiClient) classifyHTTPError(status int, body []byte) *entities.GatewayTransportError {
	message := "Erro ao gerar pagamento PIX"
	switch status {
	case http.StatusBadRequest:
		message = fmt.Sprintf("Dados inválidos enviados para %s", c.providerName)
		if reason := remoteErrorMessage(body); reason != "" {
			message = reason
		}
	case http.StatusUnauthorized:
		message = "Credenciais inválidas"
	case http.StatusInternalServerError:
		message = fmt.Sprintf("Erro interno na %s", c.providerName)
	}
	return &entities.GatewayTransportError{StatusCode: status, Message: message, Remote: body}
}

// remoteErrorMessage digs a human-readable reason out of a provider error body.
func remoteErrorMessage(body []byte) string {
	doc := map[string]any{}
	if err := json.Unmarshal(body, &doc); err != nil {
		return ""
	}
	return firstString(doc,
		"refusedReason.description",
		"error.message",
		"error",
		"message",
	)
}

func basicAuthHeader(user, pass string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(user+":"+pass))
}
