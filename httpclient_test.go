package banco_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arhyth/banco"
)

func TestBureauClient(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the decoded score", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			as.Equal(http.MethodGet, r.Method)
			as.Equal("/scores/GODE561231GR8", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"score":"72.5"}`))
		}))
		defer srv.Close()

		c := banco.NewBureauClient(banco.ClientConfig{BaseURL: srv.URL + "/", Timeout: time.Second})
		score, err := c.Score(ctx, "GODE561231GR8")
		reqrd.Nil(err)
		as.True(score.Equal(decimal.RequireFromString("72.5")))
	})

	t.Run("returns not found on 404", func(tt *testing.T) {
		as := assert.New(tt)
		srv := httptest.NewServer(http.NotFoundHandler())
		defer srv.Close()

		c := banco.NewBureauClient(banco.ClientConfig{BaseURL: srv.URL, Timeout: time.Second})
		_, err := c.Score(ctx, "NOPE")
		as.ErrorAs(err, &banco.ErrNotFound{})
	})

	t.Run("returns error on server failure", func(tt *testing.T) {
		as := assert.New(tt)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := banco.NewBureauClient(banco.ClientConfig{BaseURL: srv.URL, Timeout: time.Second})
		_, err := c.Score(ctx, "GODE561231GR8")
		as.NotNil(err)
	})
}

func TestRailClient(t *testing.T) {
	ctx := context.Background()

	t.Run("posts the transfer and returns acceptance", func(tt *testing.T) {
		as := assert.New(tt)
		reqrd := require.New(tt)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			as.Equal(http.MethodPost, r.Method)
			as.Equal("/transfers", r.URL.Path)
			body := map[string]any{}
			as.Nil(json.NewDecoder(r.Body).Decode(&body))
			as.Equal("Banorte", body["bank_name"])
			as.Equal("072180012345678904", body["clabe"])
			as.Equal("150.25", body["amount"])
			w.Write([]byte(`{"accepted":true}`))
		}))
		defer srv.Close()

		c := banco.NewRailClient(banco.ClientConfig{BaseURL: srv.URL, Timeout: time.Second})
		ok, err := c.Send(ctx, "Banorte", "072180012345678904", decimal.RequireFromString("150.25"))
		reqrd.Nil(err)
		as.True(ok)
	})

	t.Run("returns false when the rail declines", func(tt *testing.T) {
		as := assert.New(tt)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"accepted":false}`))
		}))
		defer srv.Close()

		c := banco.NewRailClient(banco.ClientConfig{BaseURL: srv.URL, Timeout: time.Second})
		ok, err := c.Send(ctx, "Banorte", "072180012345678904", decimal.NewFromInt(1))
		as.Nil(err)
		as.False(ok)
	})

	t.Run("returns error on malformed response", func(tt *testing.T) {
		as := assert.New(tt)
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"accepted":`))
		}))
		defer srv.Close()

		c := banco.NewRailClient(banco.ClientConfig{BaseURL: srv.URL, Timeout: time.Second})
		_, err := c.Send(ctx, "Banorte", "072180012345678904", decimal.NewFromInt(1))
		as.NotNil(err)
	})
}
