// Package api реализует транспортный слой клиента ion-AP.
//
// Client выполняет аутентифицированные HTTP-запросы к REST API и
// возвращает Response с нетронутым телом ответа: документы и receipts —
// юридически значимые данные, их байты не изменяются.
// Один вызов CLI — один запрос; повторов нет.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ionite/ionap-cli/internal/domain"
)

// Версия API, добавляется к базовому URL.
const apiVersion = "v1"

const defaultTimeout = 30 * time.Second

const (
	contentTypeJSON = "application/json"
	contentTypeXML  = "application/xml"
)

// Response — сырой ответ сервера.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Client — HTTP-клиент для ion-AP API.
type Client struct {
	baseURL    string // с завершающим слэшем, без сегмента версии
	apiKey     string
	httpClient *http.Client
	verboseW   io.Writer // nil, если verbose-режим выключен
}

// NewClient создаёт клиент для API. baseURL должен заканчиваться слэшем.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}
}

// SetVerbose включает печать строки запроса и заголовков в w перед
// каждым запросом. Значение Authorization маскируется.
func (c *Client) SetVerbose(w io.Writer) {
	c.verboseW = w
}

// --- Входящие транзакции ---

// ReceiveList возвращает страницу входящих транзакций, новые первыми.
func (c *Client) ReceiveList(ctx context.Context, offset, limit int) (*Response, error) {
	return c.request(ctx, http.MethodGet, "receive/", pageQuery(offset, limit), nil, "", contentTypeJSON)
}

// ReceiveMetadata возвращает конвертные данные входящей транзакции.
func (c *Client) ReceiveMetadata(ctx context.Context, id string) (*Response, error) {
	return c.request(ctx, http.MethodGet, "receive/"+id, nil, nil, "", contentTypeJSON)
}

// ReceiveDocument возвращает XML-документ входящей транзакции как есть.
func (c *Client) ReceiveDocument(ctx context.Context, id string) (*Response, error) {
	return c.request(ctx, http.MethodGet, "receive/"+id+"/document", nil, nil, "", contentTypeXML)
}

// ReceiveDelete удаляет входящую транзакцию на сервере.
func (c *Client) ReceiveDelete(ctx context.Context, id string) (*Response, error) {
	return c.request(ctx, http.MethodDelete, "receive/"+id+"/", nil, nil, "", contentTypeJSON)
}

// --- Исходящие транзакции ---

// SendDocument отправляет XML-документ как новую исходящую транзакцию.
func (c *Client) SendDocument(ctx context.Context, document []byte) (*Response, error) {
	return c.request(ctx, http.MethodPost, "send/new/document/", nil, document, contentTypeXML, contentTypeJSON)
}

// SendStatusList возвращает страницу статусов исходящих транзакций, новые первыми.
func (c *Client) SendStatusList(ctx context.Context, offset, limit int) (*Response, error) {
	return c.request(ctx, http.MethodGet, "send/status/transaction/", pageQuery(offset, limit), nil, "", contentTypeJSON)
}

// SendStatus возвращает статус одной исходящей транзакции.
func (c *Client) SendStatus(ctx context.Context, id string) (*Response, error) {
	return c.request(ctx, http.MethodGet, "send/status/transaction/"+id, nil, nil, "", contentTypeJSON)
}

// SendReceipt возвращает receipt исходящей транзакции как есть.
func (c *Client) SendReceipt(ctx context.Context, id string) (*Response, error) {
	return c.request(ctx, http.MethodGet, "send/status/transaction/"+id+"/receipt", nil, nil, "", contentTypeXML)
}

// SendStatusDelete удаляет запись об исходящей транзакции на сервере.
func (c *Client) SendStatusDelete(ctx context.Context, id string) (*Response, error) {
	return c.request(ctx, http.MethodDelete, "send/status/transaction/"+id+"/", nil, nil, "", contentTypeJSON)
}

// --- Декодирование ответов ---

// DecodeList разбирает конверт спискового ответа.
func (r *Response) DecodeList() (*domain.TransactionList, error) {
	var list domain.TransactionList
	if err := json.Unmarshal(r.Body, &list); err != nil {
		return nil, fmt.Errorf("%w: failed to decode list response: %v", ErrTransport, err)
	}
	return &list, nil
}

// DecodeDetail разбирает ответ одиночной транзакции.
func (r *Response) DecodeDetail() (*domain.TransactionDetail, error) {
	var detail domain.TransactionDetail
	if err := json.Unmarshal(r.Body, &detail); err != nil {
		return nil, fmt.Errorf("%w: failed to decode transaction response: %v", ErrTransport, err)
	}
	return &detail, nil
}

// DecodeSendResult разбирает ответ на отправку документа.
func (r *Response) DecodeSendResult() (*domain.SendResult, error) {
	var result domain.SendResult
	if err := json.Unmarshal(r.Body, &result); err != nil {
		return nil, fmt.Errorf("%w: failed to decode send response: %v", ErrTransport, err)
	}
	return &result, nil
}

// --- HTTP ---

func pageQuery(offset, limit int) url.Values {
	return url.Values{
		"offset": []string{strconv.Itoa(offset)},
		"limit":  []string{strconv.Itoa(limit)},
	}
}

func (c *Client) request(ctx context.Context, method, path string, query url.Values, body []byte, contentType, accept string) (*Response, error) {
	reqURL := c.baseURL + apiVersion + "/" + path
	if len(query) > 0 {
		reqURL = reqURL + "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		bodyReader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrTransport, err)
	}

	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", accept)
	req.Header.Set("Authorization", "Token "+c.apiKey)

	c.dumpRequest(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response body: %v", ErrTransport, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, newError(resp.StatusCode, respBody)
	}

	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
	}, nil
}

// dumpRequest печатает строку запроса и заголовки в verbose-режиме.
// Все заголовки выводятся как есть, кроме токена авторизации.
func (c *Client) dumpRequest(req *http.Request) {
	if c.verboseW == nil {
		return
	}
	fmt.Fprintf(c.verboseW, "Request: %s %s\n", req.Method, req.URL)
	fmt.Fprintln(c.verboseW, "Headers:")
	for k := range req.Header {
		if k == "Authorization" {
			fmt.Fprintln(c.verboseW, "  Authorization: Token <api key>")
			continue
		}
		fmt.Fprintf(c.verboseW, "  %s: %s\n", k, req.Header.Get(k))
	}
}

// newError строит Error из тела ответа. Тело ошибки обычно JSON
// вида {"code": ..., "message": ...}, но может быть и произвольным текстом.
func newError(statusCode int, body []byte) *Error {
	apiErr := &Error{
		StatusCode: statusCode,
		Body:       body,
	}

	var envelope struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil {
		apiErr.Code = envelope.Code
		apiErr.Message = envelope.Message
	}

	return apiErr
}
