package web

import (
	"golang.org/x/time/rate"

	"trial-manager/api/api"
	"trial-manager/api/shared"
)

// Config holds the configuration for the web server
type Config struct {
	Addr string
	API  *api.API
}

// Server is the HTTP server that handles trial management requests
type Server struct {
	api     *api.API
	limiter *rate.Limiter
}

// trialRequest is the JSON body for create and replace requests
type trialRequest struct {
	Trial shared.Trial `json:"trial"`
}

// createResponse is returned when a trial is accepted for persistence
type createResponse struct {
	TrialId string `json:"trialId"`
}

// violationsResponse is returned when validation rejects a hierarchy
type violationsResponse struct {
	Violations []string `json:"violations"`
}

// judgesResponse carries judge name suggestions
type judgesResponse struct {
	Judges []string `json:"judges"`
}
