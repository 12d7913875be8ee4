/* trials.go
 * Contains the HTTP handlers for trial management. Callers identify themselves with the
 * X-User-Id and X-Username headers; mutating requests pass through a shared rate limiter
 */

package web

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"trial-manager/api/shared"
	"trial-manager/api/store"
)

// userFromRequest builds the caller identity from request headers. An empty
// UserId means the caller is anonymous
func userFromRequest(r *http.Request) shared.User {
	return shared.User{
		UserId:   r.Header.Get("X-User-Id"),
		Username: r.Header.Get("X-Username"),
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Println("failed to encode response:", err)
	}
}

// writeStoreError maps persistence errors onto HTTP statuses. A partial write
// that could not be rolled back is logged loudly so the orphaned records can
// be cleaned up
func writeStoreError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrNotFound) {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	var partial *store.PartialWriteError
	if errors.As(err, &partial) && partial.CompensationErr != nil {
		log.Println("ALERT:", partial)
	} else {
		log.Println("store error:", err)
	}
	w.WriteHeader(http.StatusInternalServerError)
}

// TrialsHandler serves the trial collection: GET lists the caller's trials,
// POST creates a new one
func (s *Server) TrialsHandler(w http.ResponseWriter, r *http.Request) {
	user := userFromRequest(r)
	if user.UserId == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	switch r.Method {
	case http.MethodGet:
		summaries, err := s.api.ListTrials(user)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, summaries)

	case http.MethodPost:
		if !s.limiter.Allow() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		defer r.Body.Close()

		var req trialRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Println("failed to decode trial request:", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		trialId, violations, err := s.api.CreateTrial(user, req.Trial)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if len(violations) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, violationsResponse{Violations: violations})
			return
		}
		writeJSON(w, http.StatusCreated, createResponse{TrialId: trialId})

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// TrialHandler serves a single trial: GET reconstitutes it, PUT replaces it,
// DELETE removes it and its subtree
func (s *Server) TrialHandler(w http.ResponseWriter, r *http.Request) {
	trialId := strings.TrimPrefix(r.URL.Path, "/trials/")
	if trialId == "" || strings.Contains(trialId, "/") {
		w.WriteHeader(http.StatusNotFound)
		return
	}
	user := userFromRequest(r)

	switch r.Method {
	case http.MethodGet:
		// anonymous reads are allowed, the owner filter only applies when a
		// caller identifies itself
		trial, err := s.api.GetTrial(trialId, user.UserId)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, trial)

	case http.MethodPut:
		if user.UserId == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !s.limiter.Allow() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		defer r.Body.Close()

		var req trialRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			log.Println("failed to decode trial request:", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		violations, err := s.api.ReplaceTrial(trialId, user, req.Trial)
		if err != nil {
			writeStoreError(w, err)
			return
		}
		if len(violations) > 0 {
			writeJSON(w, http.StatusUnprocessableEntity, violationsResponse{Violations: violations})
			return
		}
		w.WriteHeader(http.StatusNoContent)

	case http.MethodDelete:
		if user.UserId == "" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !s.limiter.Allow() {
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		if err := s.api.DeleteTrial(trialId, user); err != nil {
			writeStoreError(w, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)

	default:
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// JudgesHandler returns judge name suggestions for the q query parameter
func (s *Server) JudgesHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	judges, err := s.api.SuggestJudges(r.URL.Query().Get("q"))
	if err != nil {
		writeStoreError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, judgesResponse{Judges: judges})
}
