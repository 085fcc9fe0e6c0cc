package restapi

import (
	"errors"
	"net/http"

	"freelance-marketplace-client/internal/repo/repo_errors"
	"freelance-marketplace-client/pkg/restclient"
)

// mapStatus attaches the repo-level sentinel matching the response status so
// callers can branch with errors.Is while the transport error, including any
// server-supplied message, stays reachable through errors.As.
func mapStatus(err error) error {
	if err == nil {
		return nil
	}

	var serverErr *restclient.ServerError
	if !errors.As(err, &serverErr) {
		return err
	}

	switch serverErr.Status {
	case http.StatusNotFound:
		return errors.Join(repo_errors.ErrNotFound, err)
	case http.StatusUnauthorized:
		return errors.Join(repo_errors.ErrUnauthorized, err)
	}

	return err
}
