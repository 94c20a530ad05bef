// Copyright (C) 2022, Speedtest Exporter Contributors. All rights reserved.
// See the file LICENSE for licensing terms.
package application

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/speedtest-community/speedtest-exporter/pkg/ux"
)

// This is a generic interface for performing highly testable downloads. All
// methods here involve external http requests. To write tests using these
// functions, provide a mocked version of this interface to your application
// object.
type Downloader interface {
	Download(url string) ([]byte, error)
	DownloadWithTee(url string) ([]byte, error)
}

type downloader struct{}

func NewDownloader() Downloader {
	return &downloader{}
}

func (d downloader) Download(url string) ([]byte, error) {
	return d.download(url, func(int64) io.Writer { return io.Discard })
}

// DownloadWithTee additionally tees the payload through a progress bar on
// the user terminal.
func (d downloader) DownloadWithTee(url string) ([]byte, error) {
	return d.download(url, func(totalBytes int64) io.Writer {
		return ux.DownloadBar(totalBytes, "Downloading")
	})
}

func (downloader) download(url string, tee func(totalBytes int64) io.Writer) ([]byte, error) {
	resp, err := http.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected http status code: %d", resp.StatusCode)
	}

	var payload bytes.Buffer
	if _, err := io.Copy(io.MultiWriter(&payload, tee(resp.ContentLength)), resp.Body); err != nil {
		return nil, err
	}
	return payload.Bytes(), nil
}
