package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

const UserIDHeader = "X-User-ID"

var ErrMissingOwner = errors.New("missing user id")

type ErrorResponse struct {
	Message string `json:"message,omitempty"`
}

func ReplyWithError(w http.ResponseWriter, statusCode int, errMsg string) {
	ReplyJSONResponse(w, statusCode, &ErrorResponse{Message: errMsg})
}

func ReplyJSONResponse(w http.ResponseWriter, statusCode int, output any) {
	w.Header().Add("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if output == nil {
		return
	}
	json.NewEncoder(w).Encode(output)
}

func DecodeJSONBody(r *http.Request, placeholder any) error {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		return fmt.Errorf("reading request body: %w", err)
	}

	if err := json.Unmarshal(reqBody, placeholder); err != nil {
		return fmt.Errorf("unmarshaling json: %w", err)
	}

	return nil
}

func GetQueryParam(r *http.Request, name string) string {
	return strings.TrimSpace(r.URL.Query().Get(name))
}

// GetQueryParamInt returns fallback when the parameter is missing or not an integer.
func GetQueryParamInt(r *http.Request, name string, fallback int) int {
	value, err := strconv.Atoi(GetQueryParam(r, name))
	if err != nil {
		return fallback
	}
	return value
}

func GetQueryParamBool(r *http.Request, name string) bool {
	value, _ := strconv.ParseBool(GetQueryParam(r, name))
	return value
}

// OwnerID returns the user the gateway authenticated for this request.
func OwnerID(r *http.Request) (string, error) {
	owner := strings.TrimSpace(r.Header.Get(UserIDHeader))
	if owner == "" {
		return "", ErrMissingOwner
	}
	return owner, nil
}
