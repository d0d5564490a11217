package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/graphql-go/graphql"

	"github.com/compasshq/compass/internal/graph"
	"github.com/compasshq/compass/internal/httpserver/deps"
	"github.com/compasshq/compass/internal/logger"
)

type graphqlRequest struct {
	Query         string                 `json:"query"`
	OperationName string                 `json:"operationName"`
	Variables     map[string]interface{} `json:"variables"`
}

// GraphQL serves the single query endpoint. Errors stay field-level: a
// failed account fetch still returns the rest of the response. The one
// transport-level special case is an unauthenticated account-scoped query,
// which becomes a login redirect (when a login URL is configured) or a 401.
func GraphQL(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, err := parseRequest(r)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if req.Query == "" {
			http.Error(w, "query must not be empty", http.StatusBadRequest)
			return
		}

		result := graphql.Do(graphql.Params{
			Schema:         d.Schema,
			RequestString:  req.Query,
			OperationName:  req.OperationName,
			VariableValues: req.Variables,
			Context:        r.Context(),
		})

		status := http.StatusOK
		if graph.HasUnauthenticated(result) {
			if d.LoginURL != "" {
				d.Logger.Debug("unauthenticated account query, redirecting to login")
				http.Redirect(w, r, d.LoginURL, http.StatusFound)
				return
			}
			status = http.StatusUnauthorized
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			d.Logger.Warn("failed to write graphql response", logger.Error(err))
		}
	}
}

func parseRequest(r *http.Request) (graphqlRequest, error) {
	var req graphqlRequest

	switch r.Method {
	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if raw := q.Get("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return req, err
			}
		}
	default:
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			return req, err
		}
	}
	return req, nil
}
