package http

import (
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
	"github.com/polyrabbit/coin-chat/config"
	"github.com/sirupsen/logrus"
)

const userAgent = "Mozilla/5.0 (compatible; coin-chat; +https://github.com/polyrabbit/coin-chat)"

type Client struct {
	StdClient *http.Client
}

func New(cfg *config.Config) *Client {
	// Thread safe
	stdClient := &http.Client{}
	if cfg.Timeout != 0 {
		logrus.Debugf("HTTP request timeout is set to %d seconds", cfg.Timeout)
		stdClient.Timeout = time.Duration(cfg.Timeout) * time.Second
	}

	if cfg.Proxy != "" {
		proxyURL, err := url.Parse(cfg.Proxy)
		if err != nil {
			logrus.Warnf("Failed to parse proxy URL: %s, error: %v, using system proxy", cfg.Proxy, err)
		} else {
			transport := http.DefaultTransport.(*http.Transport).Clone()
			transport.Proxy = http.ProxyURL(proxyURL)
			logrus.Debugf("Using proxy %s", cfg.Proxy)
			stdClient.Transport = transport
		}
	}
	return &Client{stdClient}
}

// Get fetches rawURL with params encoded as its query string. Anything but
// 200 OK comes back as a *ResponseError together with the body.
func (c *Client) Get(rawURL string, params map[string]string) ([]byte, error) {
	if params != nil {
		parsedURL, err := url.Parse(rawURL)
		if err != nil {
			return nil, errors.Wrapf(err, "parse url %s", rawURL)
		}
		query := parsedURL.Query()
		for k, v := range params {
			query.Set(k, v)
		}
		parsedURL.RawQuery = query.Encode()
		rawURL = parsedURL.String()
	}

	req, err := http.NewRequest(http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Add("Cache-Control", "no-store")

	resp, err := c.StdClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "read response body")
	}
	if resp.StatusCode != http.StatusOK {
		return respBytes, &ResponseError{StatusCode: resp.StatusCode, Status: resp.Status, Body: respBytes}
	}
	return respBytes, nil
}

type ResponseError struct {
	StatusCode int
	Status     string
	Body       []byte
}

func (e *ResponseError) Error() string {
	body := e.Body
	if len(body) > 200 {
		body = body[:200]
	}
	return "HTTP " + e.Status + ", body " + string(body)
}
