package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"gorm.io/gorm"
)

type DBHandler struct {
	*gorm.DB
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("writeJSON: encoding response failed: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeStoreError reports a persistence failure with the underlying
// error text attached for diagnostics.
func writeStoreError(w http.ResponseWriter, msg string, err error) {
	log.Printf("%s: %v", msg, err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{
		"error":   msg,
		"details": err.Error(),
	})
}

// writeLookupError maps a failed record lookup: a missing record is a
// 404 with notFoundMsg, anything else is a store error.
func writeLookupError(w http.ResponseWriter, err error, notFoundMsg, storeMsg string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		writeError(w, http.StatusNotFound, notFoundMsg)
		return
	}
	writeStoreError(w, storeMsg, err)
}

func (db *DBHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Server is running!"})
}
