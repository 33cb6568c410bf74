package requests

import (
	"encoding/json"
	"net/http"

	"github.com/auxroom/auxroom-api/constants"
)

func RespondWithError(w http.ResponseWriter, status int, message string) {
	w.WriteHeader(status)
	_, _ = w.Write(marshalErrorBody(message))
}

func RespondNotFound(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNotFound)
	_, _ = w.Write(marshalErrorBody(constants.ErrorNotFound))
}

func RespondBadRequest(w http.ResponseWriter) {
	w.WriteHeader(http.StatusBadRequest)
	_, _ = w.Write(marshalErrorBody(constants.ErrorBadRequest))
}

func RespondInternalError(w http.ResponseWriter) {
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(marshalErrorBody(constants.ErrorInternal))
}

func RespondAuthError(w http.ResponseWriter) {
	w.WriteHeader(http.StatusUnauthorized)
	_, _ = w.Write(marshalErrorBody(constants.ErrorNotAuthenticated))
}

func marshalErrorBody(e string) []byte {
	body, err := json.MarshalIndent(ErrorResponse{Error: e}, "", " ")
	if err != nil {
		body, _ = json.MarshalIndent(ErrorResponse{Error: err.Error()}, "", " ")
	}
	return body
}

type ErrorResponse struct {
	Error string `json:"error"`
}
