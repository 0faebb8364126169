package handler

import "net/http"

// HandleHealthz reports process liveness
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, SuccessResponse{Message: "ok"})
	}
}

// HandleVersion reports the running build version for deployment checks
func HandleVersion(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, VersionResponse{Version: version})
	}
}
