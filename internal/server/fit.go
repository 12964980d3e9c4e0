// internal/server/fit.go
package server

import (
	"net/http"
	"time"

	"zuliam-concierge/internal/catalog"
	"zuliam-concierge/internal/common/errors"
	"zuliam-concierge/internal/common/metrics"
	"zuliam-concierge/internal/fitting"
)

type fitAssessRequest struct {
	Length string `json:"length"`
	Width  string `json:"width"`
}

type fitAssessResponse struct {
	Measurement fitting.NormalizedMeasurement `json:"measurement"`
	Assessments []fitting.Assessment          `json:"assessments"`
}

// handleFitAssess normalizes the raw inputs and returns the full ranked
// assessment list. Malformed measurements are not an error; they fall
// back to the configured defaults.
func (s *Server) handleFitAssess(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req fitAssessRequest
	if stdErr := s.decodeJSON(r, &req); stdErr != nil {
		s.writeError(w, stdErr)
		s.obs.RecordOperation(r.Context(), "fit_assess", "invalid_request")
		return
	}

	measurement := s.fitCfg.NormalizeMeasurement(req.Length, req.Width)
	metrics.FitQueries.Inc()
	if measurement.LengthDefaulted {
		metrics.FitDefaultedInputs.WithLabelValues("length").Inc()
	}
	if measurement.WidthDefaulted {
		metrics.FitDefaultedInputs.WithLabelValues("width").Inc()
	}

	assessments := s.scorer.Assess(measurement.Measurement, s.catalog.Variants())

	s.obs.RecordOperation(r.Context(), "fit_assess", "success")
	s.obs.RecordDuration(r.Context(), "fit_assess", time.Since(start))
	s.writeJSON(w, http.StatusOK, fitAssessResponse{
		Measurement: measurement,
		Assessments: assessments,
	})
}

type sizeConvertResponse struct {
	Scale     catalog.Scale         `json:"scale"`
	Input     string                `json:"input"`
	MatchType fitting.MatchType     `json:"matchType"`
	Row       *catalog.SizeChartRow `json:"row"`
}

func (s *Server) handleSizeConvert(w http.ResponseWriter, r *http.Request) {
	rawScale := r.URL.Query().Get("scale")
	scale, ok := catalog.ParseScale(rawScale)
	if !ok {
		s.writeError(w, errors.NewUnknownScaleError(rawScale))
		return
	}

	size := r.URL.Query().Get("size")
	conversion := fitting.Convert(scale, size, s.catalog.SizeChart())
	metrics.SizeConversions.WithLabelValues(string(conversion.MatchType)).Inc()
	s.obs.RecordOperation(r.Context(), "size_convert", string(conversion.MatchType))

	s.writeJSON(w, http.StatusOK, sizeConvertResponse{
		Scale:     scale,
		Input:     size,
		MatchType: conversion.MatchType,
		Row:       conversion.Row,
	})
}

func (s *Server) handleSizeChart(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]interface{}{
		"rows": s.catalog.SizeChart(),
	})
}
