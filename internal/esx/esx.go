package esx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	es8 "github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/google/uuid"
	"github.com/samber/lo"

	"sdg-innovation-api/internal/config"
)

type Client = es8.Client

func Open(cfg *config.Config) (*Client, func(), error) {
	if strings.TrimSpace(cfg.ES.Addrs) == "" {
		return nil, func() {}, nil
	}
	raw := strings.Split(cfg.ES.Addrs, ",")
	addrs := lo.FilterMap(raw, func(s string, _ int) (string, bool) {
		t := strings.TrimSpace(s)
		return t, t != ""
	})
	es, err := es8.NewClient(es8.Config{Addresses: addrs, Username: cfg.ES.Username, Password: cfg.ES.Password})
	if err != nil {
		return nil, func() {}, err
	}
	return es, func() {}, nil
}

// ProblemDoc is the search projection of a predefined problem.
type ProblemDoc struct {
	ID               uuid.UUID `json:"id"`
	SdgGoal          int       `json:"sdg_goal"`
	ProblemStatement string    `json:"problem_statement"`
	Stakeholders     []string  `json:"stakeholders"`
	CreatedAt        string    `json:"created_at"`
}

// IndexProblem writes a problem document. A nil client is a no-op so the API
// keeps working when search is not configured.
func IndexProblem(ctx context.Context, es *Client, index string, doc ProblemDoc) error {
	if es == nil {
		return nil
	}
	b, _ := json.Marshal(doc)
	res, err := es.Index(index, bytes.NewReader(b),
		es.Index.WithDocumentID(doc.ID.String()),
		es.Index.WithContext(ctx),
	)
	if err != nil {
		return err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return fmtError(res)
	}
	return nil
}

// SearchProblems runs a multi_match over statement and stakeholders,
// optionally filtered to one SDG goal, and returns the matching document ids
// in relevance order.
func SearchProblems(ctx context.Context, es *Client, index, query string, sdgGoal, from, size int) ([]uuid.UUID, error) {
	if es == nil {
		return nil, nil
	}
	must := []map[string]any{
		{"multi_match": map[string]any{
			"query":  query,
			"fields": []string{"problem_statement^2", "stakeholders"},
		}},
	}
	boolQ := map[string]any{"must": must}
	if sdgGoal > 0 {
		boolQ["filter"] = []map[string]any{
			{"term": map[string]any{"sdg_goal": sdgGoal}},
		}
	}
	q := map[string]any{"query": map[string]any{"bool": boolQ}}
	b, _ := json.Marshal(q)
	res, err := es.Search(
		es.Search.WithContext(ctx),
		es.Search.WithIndex(index),
		es.Search.WithBody(bytes.NewReader(b)),
		es.Search.WithFrom(from),
		es.Search.WithSize(size),
	)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()
	if res.StatusCode >= http.StatusBadRequest {
		return nil, fmtError(res)
	}
	var out struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(out.Hits.Hits))
	for _, h := range out.Hits.Hits {
		if id, err := uuid.Parse(h.ID); err == nil {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func fmtError(res *esapi.Response) error { return fmt.Errorf("es error: %s", res.String()) }
