package handlers

import "net/http"

// Health reports liveness and the active storage driver.
func Health(driver string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"driver": driver,
		})
	}
}
