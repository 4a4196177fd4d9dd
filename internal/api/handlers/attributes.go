// Package handlers implements the HTTP handlers behind the scalaris-pic API.
package handlers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/concave-dev/scalaris-pic/internal/attributes"
	"github.com/concave-dev/scalaris-pic/internal/logging"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Status string `json:"status"`
	Error  string `json:"error"`
}

// ValidateResponse is the body of a successful validation
type ValidateResponse struct {
	Status     string `json:"status"`
	Node       string `json:"node"`
	Restricted bool   `json:"restricted"`
}

// HandleTree returns the full attribute tree. The ?format query selects json
// (default) or yaml.
func HandleTree(tree attributes.Tree) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeDocument(c, tree)
	}
}

// HandleAttributes returns only the attribute record.
func HandleAttributes(cfg attributes.NodeDefaultConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		writeDocument(c, cfg)
	}
}

// HandleValidate validates a posted tree or bare record. The body is capped at
// maxBytes: an oversized body gets 413, an unparsable one 400 and an invalid
// record 422.
func HandleValidate(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)

		data, err := io.ReadAll(c.Request.Body)
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
					Status: "error",
					Error:  fmt.Sprintf("request body exceeds %d bytes", maxBytes),
				})
				return
			}
			c.JSON(http.StatusBadRequest, ErrorResponse{Status: "error", Error: err.Error()})
			return
		}

		cfg, err := attributes.DecodeDocument(data)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Status: "error", Error: err.Error()})
			return
		}

		if err := cfg.Validate(); err != nil {
			logging.Debug("Rejected attribute record: %v", err)
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Status: "invalid", Error: err.Error()})
			return
		}

		c.JSON(http.StatusOK, ValidateResponse{
			Status:     "valid",
			Node:       cfg.Node,
			Restricted: !cfg.Unrestricted(),
		})
	}
}

// writeDocument encodes v with the same encoder the CLI uses, so the API and
// `render` return identical bytes for the same record.
func writeDocument(c *gin.Context, v any) {
	format := attributes.FormatJSON
	if q := c.Query("format"); q != "" {
		parsed, err := attributes.ParseFormat(q)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Status: "error", Error: err.Error()})
			return
		}
		format = parsed
	}

	var buf bytes.Buffer
	if err := attributes.Encode(&buf, v, format); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Status: "error", Error: err.Error()})
		return
	}

	c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
}
