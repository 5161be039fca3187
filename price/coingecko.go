package price

import (
	"encoding/json"
	"net"
	"time"

	"github.com/buger/jsonparser"
	"github.com/pkg/errors"
	"github.com/polyrabbit/coin-chat/http"
	"github.com/sirupsen/logrus"
)

// https://docs.coingecko.com/reference/simple-price
const simplePricePath = "/simple/price"

var errCoinNotFound = errors.New("coin not found in response")

type CoinGecko struct {
	baseURL    string
	httpClient *http.Client
	hasProxy   bool
}

func NewCoinGecko(baseURL string, httpClient *http.Client, hasProxy bool) *CoinGecko {
	return &CoinGecko{baseURL: baseURL, httpClient: httpClient, hasProxy: hasProxy}
}

func (c *CoinGecko) GetName() string {
	return "CoinGecko"
}

// Lookup fetches the USD price and 24 hour change of token, one request and
// no retry. Failures are reported through Result.Status.
func (c *CoinGecko) Lookup(token string) Result {
	result := Result{Token: token, ID: Resolve(token)}
	if result.ID == "" {
		result.Status, result.Err = StatusNotFound, errors.New("empty coin id")
		return result
	}

	start := time.Now()
	respBytes, err := c.httpClient.Get(c.baseURL+simplePricePath, map[string]string{
		"ids":                 result.ID,
		"vs_currencies":       "usd",
		"include_24hr_change": "true",
	})
	if err != nil {
		if _, ok := errors.Cause(err).(*http.ResponseError); ok {
			result.Status = StatusUpstreamFailed
		} else {
			result.Status = StatusNetworkFailed
		}
		result.Err = err
		c.logFailure(result, time.Since(start))
		return result
	}

	price, change, err := parseSimplePrice(respBytes, result.ID)
	if err != nil {
		if err == errCoinNotFound {
			result.Status = StatusNotFound
		} else {
			result.Status = StatusNetworkFailed
		}
		result.Err = err
		c.logFailure(result, time.Since(start))
		return result
	}

	result.Status = StatusOK
	result.Quote = &Quote{
		Token:     token,
		ID:        result.ID,
		Price:     price,
		Change24h: change,
		UpdatedAt: time.Now(),
	}
	logrus.Debugf("%s - %s is %f USD (%+.2f%%), took %s", c.GetName(), result.ID, price, change, time.Since(start))
	return result
}

// Quotes looks up all tokens at once, results keep the requested order.
func (c *CoinGecko) Quotes(tokens []string) []Result {
	// Use slice to hold the waiting chans in order to keep requested order
	waitingChans := make([]chan Result, 0, len(tokens))
	for _, token := range tokens {
		doneCh := make(chan Result, 1)
		waitingChans = append(waitingChans, doneCh)
		go func(token string) {
			doneCh <- c.Lookup(token)
		}(token)
	}

	results := make([]Result, 0, len(waitingChans))
	for _, doneCh := range waitingChans {
		results = append(results, <-doneCh)
	}
	return results
}

func (c *CoinGecko) logFailure(result Result, elapsed time.Duration) {
	logEntry := logrus.WithError(result.Err).WithField("status", result.Status.String())
	e, ok := errors.Cause(result.Err).(net.Error)
	if ok && e.Timeout() {
		logEntry = logEntry.WithField("elapsed", elapsed.String())
	}
	logEntry.Warnf("Failed to get price for %s (%s) from %s", result.Token, result.ID, c.GetName())
	if !c.hasProxy && ok && e.Timeout() {
		logrus.Info("Maybe you are blocked by a firewall, try using --proxy to go through a proxy?")
	}
}

// Response looks like {"bitcoin":{"usd":67187.34,"usd_24h_change":-0.63}}
func parseSimplePrice(body []byte, id string) (price, change float64, err error) {
	if !json.Valid(body) {
		return 0, 0, errors.New("malformed response body")
	}
	coin, _, _, err := jsonparser.Get(body, id)
	if err == jsonparser.KeyPathNotFoundError {
		return 0, 0, errCoinNotFound
	}
	if err != nil {
		return 0, 0, errors.Wrapf(err, "get %s", id)
	}
	price, err = jsonparser.GetFloat(coin, "usd")
	if err != nil {
		return 0, 0, errors.Wrapf(err, "get %s usd price", id)
	}
	// Absent or null for freshly listed coins
	change, err = jsonparser.GetFloat(coin, "usd_24h_change")
	if err != nil {
		change = 0
	}
	return price, change, nil
}
