package banco

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	_ CreditBureau = (*BureauClient)(nil)
	_ TransferRail = (*RailClient)(nil)
)

type scoreJSONResp struct {
	Score decimal.Decimal `json:"score"`
}

// BureauClient asks a credit bureau for scores over JSON:
// GET {base}/scores/{taxID} -> {"score": "72.5"}.
type BureauClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewBureauClient(cfg ClientConfig) *BureauClient {
	return &BureauClient{
		BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
		HTTP:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *BureauClient) Score(ctx context.Context, taxID string) (decimal.Decimal, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"/scores/"+url.PathEscape(taxID), nil)
	if err != nil {
		return decimal.Zero, err
	}
	req.Header.Set("Accept", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return decimal.Zero, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return decimal.Zero, ErrNotFound{Key: taxID}
	}
	if resp.StatusCode != http.StatusOK {
		return decimal.Zero, unexpectedStatus("bureau", resp)
	}
	var body scoreJSONResp
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return decimal.Zero, fmt.Errorf("decoding bureau response: %w", err)
	}
	return body.Score, nil
}

type transferJSONReq struct {
	BankName string          `json:"bank_name"`
	CLABE    string          `json:"clabe"`
	Amount   decimal.Decimal `json:"amount"`
}

type transferJSONResp struct {
	Accepted bool `json:"accepted"`
}

// RailClient submits interbank transfers:
// POST {base}/transfers {"bank_name","clabe","amount"} -> {"accepted": bool}.
type RailClient struct {
	BaseURL string
	HTTP    *http.Client
}

func NewRailClient(cfg ClientConfig) *RailClient {
	return &RailClient{
		BaseURL: strings.TrimRight(cfg.BaseURL, "/"),
		HTTP:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *RailClient) Send(ctx context.Context, bankName, clabe string, amount decimal.Decimal) (bool, error) {
	buf, err := json.Marshal(transferJSONReq{BankName: bankName, CLABE: clabe, Amount: amount})
	if err != nil {
		return false, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/transfers", bytes.NewReader(buf))
	if err != nil {
		return false, err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return false, unexpectedStatus("rail", resp)
	}
	var body transferJSONResp
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return false, fmt.Errorf("decoding rail response: %w", err)
	}
	return body.Accepted, nil
}

func unexpectedStatus(name string, resp *http.Response) error {
	msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
	return fmt.Errorf("%s responded %d: %s", name, resp.StatusCode, strings.TrimSpace(string(msg)))
}
