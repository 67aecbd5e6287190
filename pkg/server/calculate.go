package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/raterudder/energyusage/pkg/energy"
	"github.com/raterudder/energyusage/pkg/log"
	"github.com/raterudder/energyusage/pkg/types"
)

type usageResponse struct {
	Period int `json:"period"`
	Usage  int `json:"usage"`
}

type savingsResponse struct {
	Period  int `json:"period"`
	Savings int `json:"savings"`
}

// decodeProfile reads the profile from the request body. If it returns false
// an error response has already been written.
func (s *Server) decodeProfile(w http.ResponseWriter, r *http.Request) (types.Profile, bool) {
	ctx := r.Context()
	limit := s.maxBodyBytes
	if limit <= 0 {
		limit = defaultMaxBodyBytes
	}

	var profile types.Profile
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, limit))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&profile); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeJSONError(w, "request body too large", http.StatusRequestEntityTooLarge)
			return profile, false
		}
		log.Ctx(ctx).DebugContext(ctx, "failed to decode profile", slog.Any("error", err))
		writeJSONError(w, "invalid profile: "+err.Error(), http.StatusBadRequest)
		return profile, false
	}
	if err := profile.Validate(); err != nil {
		writeJSONError(w, "invalid profile: "+err.Error(), http.StatusBadRequest)
		return profile, false
	}
	return profile, true
}

// writeCalcError writes the response for an error returned by the
// calculator. Validation errors are the caller's fault, anything else is
// unexpected.
func writeCalcError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()
	switch {
	case errors.Is(err, energy.ErrInvalidTimestamp),
		errors.Is(err, energy.ErrInvalidDay),
		errors.Is(err, energy.ErrDayOutOfRange):
		log.Ctx(ctx).DebugContext(ctx, "rejected profile", slog.Any("error", err))
		writeJSONError(w, clientMessage(err), http.StatusBadRequest)
	default:
		log.Ctx(ctx).ErrorContext(ctx, "failed to calculate", slog.Any("error", err))
		writeJSONError(w, "failed to calculate", http.StatusInternalServerError)
	}
}

// clientMessage returns the wording API clients expect for a validation
// error. It differs from the Go error text only in casing.
func clientMessage(err error) string {
	var tsErr *energy.TimestampError
	switch {
	case errors.As(err, &tsErr):
		return fmt.Sprintf("Invalid timestamp: Expected between 0 and %d, but got %d", tsErr.Period, tsErr.Timestamp)
	case errors.Is(err, energy.ErrInvalidDay):
		return "Day must be an integer"
	case errors.Is(err, energy.ErrDayOutOfRange):
		return "Day out of range"
	}
	return err.Error()
}

func (s *Server) handleUsage(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.decodeProfile(w, r)
	if !ok {
		return
	}
	usage, err := s.calc.Usage(profile)
	if err != nil {
		writeCalcError(w, r, err)
		return
	}
	writeJSON(w, usageResponse{
		Period: s.calc.Period(),
		Usage:  usage,
	})
}

func (s *Server) handleSavings(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.decodeProfile(w, r)
	if !ok {
		return
	}
	savings, err := s.calc.Savings(profile)
	if err != nil {
		writeCalcError(w, r, err)
		return
	}
	writeJSON(w, savingsResponse{
		Period:  s.calc.Period(),
		Savings: savings,
	})
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	profile, ok := s.decodeProfile(w, r)
	if !ok {
		return
	}
	report, err := s.calc.Report(profile)
	if err != nil {
		writeCalcError(w, r, err)
		return
	}
	writeJSON(w, report)
}

// handleDay reports on a single day of a multi-day profile. The day is
// given in the day query parameter.
func (s *Server) handleDay(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	dayStr := r.URL.Query().Get("day")
	if dayStr == "" {
		writeJSONError(w, "missing day", http.StatusBadRequest)
		return
	}
	dayNum, err := strconv.ParseFloat(dayStr, 64)
	if err != nil {
		writeJSONError(w, "invalid day: "+err.Error(), http.StatusBadRequest)
		return
	}
	// validate before reading the body
	day, err := s.calc.ValidateDay(dayNum)
	if err != nil {
		writeCalcError(w, r, err)
		return
	}
	ctx = log.WithAttrs(ctx, slog.Int("day", day))
	r = r.WithContext(ctx)

	profile, ok := s.decodeProfile(w, r)
	if !ok {
		return
	}
	report, err := s.calc.ReportForDay(profile, day)
	if err != nil {
		writeCalcError(w, r, err)
		return
	}
	writeJSON(w, report)
}
