package cbr

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/Dan9191/finance-service/internal/metrics"
	"github.com/Dan9191/finance-service/internal/models"
)

const (
	breakerName     = "cbr"
	tripAfter       = 3
	breakerCooldown = 30 * time.Second
	rateWindowDays  = 30
)

// CBRClient fetches the Central Bank of Russia key rate over SOAP
type CBRClient struct {
	url    string
	client *http.Client
	cb     *gobreaker.CircuitBreaker
	log    *logrus.Logger
	now    func() time.Time
}

// NewCBRClient initializes a new CBR client guarded by a circuit breaker
func NewCBRClient(url string, log *logrus.Logger, m *metrics.Metrics) *CBRClient {
	c := &CBRClient{
		url: url,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
		now: time.Now,
	}

	c.cb = gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        breakerName,
		MaxRequests: 1,
		Timeout:     breakerCooldown,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= tripAfter
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			log.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
			if m != nil {
				m.BreakerState.WithLabelValues(name).Set(float64(to))
			}
		},
	})

	return c
}

// buildSOAPRequest creates a SOAP request for the key rate over the last 30 days
func (c *CBRClient) buildSOAPRequest() string {
	now := c.now()
	fromDate := now.AddDate(0, 0, -rateWindowDays).Format("2006-01-02")
	toDate := now.Format("2006-01-02")
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
		<soap12:Envelope xmlns:soap12="http://www.w3.org/2003/05/soap-envelope">
			<soap12:Body>
				<KeyRate xmlns="http://web.cbr.ru/">
					<fromDate>%s</fromDate>
					<ToDate>%s</ToDate>
				</KeyRate>
			</soap12:Body>
		</soap12:Envelope>`, fromDate, toDate)
}

// sendRequest sends SOAP request to CBR
func (c *CBRClient) sendRequest(ctx context.Context, soapRequest string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewBufferString(soapRequest))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/soap+xml; charset=utf-8")
	req.Header.Set("SOAPAction", "http://web.cbr.ru/KeyRate")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.log.Debugf("CBR XML response: %s", string(body))

	return body, nil
}

// parseXMLResponse extracts the most recent rate from the KeyRate diffgram
func parseXMLResponse(rawBody []byte) (float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return 0, fmt.Errorf("failed to parse XML: %w", err)
	}

	krElements := doc.FindElements("//diffgram/KeyRate/KR")
	if len(krElements) == 0 {
		return 0, fmt.Errorf("no key rate data found in XML")
	}

	latest := krElements[0]
	var latestDate time.Time
	for _, kr := range krElements {
		dt := kr.FindElement("./DT")
		if dt == nil {
			continue
		}
		parsed, err := time.Parse(time.RFC3339, strings.TrimSpace(dt.Text()))
		if err != nil {
			continue
		}
		if parsed.After(latestDate) {
			latestDate = parsed
			latest = kr
		}
	}

	rateElement := latest.FindElement("./Rate")
	if rateElement == nil {
		return 0, fmt.Errorf("rate element not found in XML")
	}

	rate, err := strconv.ParseFloat(strings.TrimSpace(rateElement.Text()), 64)
	if err != nil {
		return 0, fmt.Errorf("failed to parse rate: %w", err)
	}

	return rate, nil
}

// KeyRate retrieves the current key rate. Upstream and open-breaker failures wrap models.ErrUnavailable.
func (c *CBRClient) KeyRate(ctx context.Context) (float64, error) {
	result, err := c.cb.Execute(func() (interface{}, error) {
		body, err := c.sendRequest(ctx, c.buildSOAPRequest())
		if err != nil {
			return nil, err
		}
		return parseXMLResponse(body)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			return 0, fmt.Errorf("key rate: %w", models.ErrUnavailable)
		}
		c.log.Errorf("Failed to fetch key rate: %v", err)
		return 0, fmt.Errorf("failed to fetch key rate: %w: %w", models.ErrUnavailable, err)
	}

	rate := result.(float64)
	c.log.Infof("Retrieved key rate: %.2f%%", rate)
	return rate, nil
}
