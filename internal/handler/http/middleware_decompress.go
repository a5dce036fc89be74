// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/MKhiriev/edims/internal/app"
	"github.com/MKhiriev/edims/internal/utils"
	"github.com/MKhiriev/edims/models"
)

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withDecompression transparently inflates request bodies sent with
// "Content-Encoding: gzip". Response compression is done by chi's Compress.
func withDecompression(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		contentEncoding := req.Header.Get("Content-Encoding")
		if !strings.Contains(contentEncoding, "gzip") || req.Body == nil || req.Body == http.NoBody {
			next.ServeHTTP(w, req)
			return
		}

		gzipReader := gzipReaderPool.Get().(*gzip.Reader)
		if err := gzipReader.Reset(req.Body); err != nil {
			gzipReaderPool.Put(gzipReader)
			utils.WriteJSON(w, models.MessageResponse{Message: app.MsgInvalidGzip}, http.StatusBadRequest)
			return
		}

		body := req.Body
		req.Body = &wrappedReadCloser{
			Reader: gzipReader,
			OnClose: func() error {
				gzipReader.Close()
				gzipReaderPool.Put(gzipReader)
				return body.Close()
			},
		}
		req.Header.Del("Content-Encoding")
		req.Header.Del("Content-Length")
		req.ContentLength = -1

		next.ServeHTTP(w, req)
	})
}

type wrappedReadCloser struct {
	io.Reader
	OnClose func() error

	closeOnce sync.Once
	closeErr  error
}

func (w *wrappedReadCloser) Close() error {
	w.closeOnce.Do(func() {
		if w.OnClose != nil {
			w.closeErr = w.OnClose()
		}
	})
	return w.closeErr
}
