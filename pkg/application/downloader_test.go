// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/speedtest-community/speedtest-exporter/pkg/ux"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

var testPayload = []byte{0xde, 0xad, 0xbe, 0xef}

func newArchiveServer(t *testing.T) *httptest.Server {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(testPayload)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestDownload(t *testing.T) {
	assert := assert.New(t)
	server := newArchiveServer(t)

	payload, err := NewDownloader().Download(server.URL)
	assert.NoError(err)
	assert.Equal(testPayload, payload)
}

func TestDownloadWithTee(t *testing.T) {
	assert := assert.New(t)
	ux.NewUserLog(zap.NewNop(), io.Discard)
	server := newArchiveServer(t)

	payload, err := NewDownloader().DownloadWithTee(server.URL)
	assert.NoError(err)
	assert.Equal(testPayload, payload)
}

func TestDownload_HTTPError(t *testing.T) {
	assert := assert.New(t)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	t.Cleanup(server.Close)

	_, err := NewDownloader().Download(server.URL)
	assert.ErrorContains(err, "unexpected http status code: 404")
}

func TestDownload_ConnectionFailure(t *testing.T) {
	assert := assert.New(t)
	server := newArchiveServer(t)
	server.Close()

	_, err := NewDownloader().Download(server.URL)
	assert.Error(err)
}
