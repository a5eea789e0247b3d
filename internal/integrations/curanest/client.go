package curanest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/curanest/booking-gateway/internal/domain"
)

type accessTokenKey struct{}

// WithAccessToken кладёт bearer-токен вызывающего в контекст для проброса в бэкенд
func WithAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}

// AccessTokenFromContext достаёт bearer-токен из контекста
func AccessTokenFromContext(ctx context.Context) string {
	token, _ := ctx.Value(accessTokenKey{}).(string)
	return token
}

// Client клиент для работы с CuraNest API
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента CuraNest
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetServiceTasks получает каталог задач пакета услуг
func (c *Client) GetServiceTasks(ctx context.Context, packageID string) ([]domain.ServiceTask, error) {
	endpoint := fmt.Sprintf("%s/svcpackage/%s/svctask", c.baseURL, url.PathEscape(packageID))

	req, err := c.newRequest(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	var envelope Envelope[[]ServiceTask]
	if err := c.do(req, &envelope); err != nil {
		return nil, err
	}

	tasks := make([]domain.ServiceTask, 0, len(envelope.Data))
	for _, t := range envelope.Data {
		tasks = append(tasks, t.ToDomain())
	}

	c.log.Info("GetServiceTasks: package_id=%s, tasks=%d", packageID, len(tasks))
	return tasks, nil
}

// CreateCustomerPackage создаёт пакет клиента (бронирование) в бэкенде
func (c *Client) CreateCustomerPackage(ctx context.Context, payload CreateCusPackageRequest) (*CusPackage, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
	}

	req, err := c.newRequest(ctx, http.MethodPost, c.baseURL+"/cuspackage", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var envelope Envelope[json.RawMessage]
	if err := c.do(req, &envelope); err != nil {
		return nil, err
	}

	created := parseCusPackage(envelope.Data)
	c.log.Info("CreateCustomerPackage: package_id=%s, patient_id=%s, remote_id=%s",
		payload.SvcPackageID, payload.PatientID, created.ID)
	return created, nil
}

func (c *Client) newRequest(ctx context.Context, method, endpoint string, body io.Reader) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token := AccessTokenFromContext(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req, nil
}

func (c *Client) do(req *http.Request, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		// Продолжаем обработку
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrPackageNotFound, req.URL.Path)
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", ErrRejected, readMessage(resp.Body))
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	default:
		c.log.Warn("CuraNest: unexpected status, method=%s, path=%s, status=%d", req.Method, req.URL.Path, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, readMessage(resp.Body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}
	return nil
}

// readMessage извлекает message из тела ошибки, иначе возвращает тело как есть
func readMessage(body io.Reader) string {
	raw, _ := io.ReadAll(io.LimitReader(body, 4096))

	var envelope Envelope[json.RawMessage]
	if err := json.Unmarshal(raw, &envelope); err == nil && envelope.Message != "" {
		return envelope.Message
	}
	return strings.TrimSpace(string(raw))
}

// parseCusPackage принимает data в виде объекта {"id": ...} или строки с id
func parseCusPackage(data json.RawMessage) *CusPackage {
	var created CusPackage
	if err := json.Unmarshal(data, &created); err == nil {
		return &created
	}

	var id string
	if err := json.Unmarshal(data, &id); err == nil {
		return &CusPackage{ID: id}
	}
	return &CusPackage{}
}
