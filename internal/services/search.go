package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"brewbatter_back_end/internal/models"
)

const MenuIndex = "menu_items"

var ErrSearchUnavailable = errors.New("client Elasticsearch non initialisé")

// Search indexe et interroge le menu dans Elasticsearch
type Search struct {
	es    *elasticsearch.Client
	index string
}

// NewSearch : es peut être nil, la recherche passe alors en mode local
func NewSearch(es *elasticsearch.Client) *Search {
	return &Search{es: es, index: MenuIndex}
}

func (s *Search) Enabled() bool {
	return s != nil && s.es != nil
}

// IndexItemType indexe (ou remplace) un article du menu
func (s *Search) IndexItemType(ctx context.Context, hit models.MenuHit) error {
	if !s.Enabled() {
		return ErrSearchUnavailable
	}

	data, err := json.Marshal(hit)
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{
		Index:      s.index,
		DocumentID: hit.ID,
		Body:       bytes.NewReader(data),
		Refresh:    "true",
	}
	res, err := req.Do(ctx, s.es)
	if err != nil {
		return fmt.Errorf("erreur envoi Elastic: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("elastic a refusé %s: %s", hit.Name, res.String())
	}
	log.Printf("✅ Article indexé dans Elasticsearch: %s", hit.Name)
	return nil
}

// DeleteItemType retire un article; un 404 n'est pas une erreur
func (s *Search) DeleteItemType(ctx context.Context, id string) error {
	if !s.Enabled() {
		return ErrSearchUnavailable
	}

	req := esapi.DeleteRequest{Index: s.index, DocumentID: id, Refresh: "true"}
	res, err := req.Do(ctx, s.es)
	if err != nil {
		return fmt.Errorf("erreur envoi Elastic: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("suppression %s: %s", id, res.String())
	}
	return nil
}

// SearchMenu cherche par nom et description (tolérance aux fautes)
func (s *Search) SearchMenu(ctx context.Context, query string, size int) ([]models.MenuHit, error) {
	if !s.Enabled() {
		return nil, ErrSearchUnavailable
	}
	if size <= 0 {
		size = 20
	}

	var buf bytes.Buffer
	q := map[string]interface{}{
		"size": size,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":     query,
				"fields":    []string{"name^3", "description"},
				"fuzziness": "AUTO",
			},
		},
	}
	if err := json.NewEncoder(&buf).Encode(q); err != nil {
		return nil, fmt.Errorf("erreur encodage requête: %w", err)
	}

	req := esapi.SearchRequest{Index: []string{s.index}, Body: &buf}
	res, err := req.Do(ctx, s.es)
	if err != nil {
		return nil, fmt.Errorf("erreur requête Elastic: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return nil, fmt.Errorf("recherche Elastic: %s", res.String())
	}

	var r struct {
		Hits struct {
			Hits []struct {
				Source models.MenuHit `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&r); err != nil {
		return nil, fmt.Errorf("erreur décodage JSON: %w", err)
	}

	hits := make([]models.MenuHit, 0, len(r.Hits.Hits))
	for _, h := range r.Hits.Hits {
		hits = append(hits, h.Source)
	}
	return hits, nil
}

// FilterMenu est la recherche locale: sous-chaîne insensible à la casse,
// les correspondances sur le nom d'abord
func FilterMenu(items []models.MenuHit, query string) []models.MenuHit {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.MenuHit{}
	}

	type scored struct {
		hit   models.MenuHit
		score int
	}
	var matches []scored
	for _, it := range items {
		switch {
		case strings.Contains(strings.ToLower(it.Name), q):
			matches = append(matches, scored{it, 2})
		case strings.Contains(strings.ToLower(it.Description), q):
			matches = append(matches, scored{it, 1})
		}
	}
	sort.SliceStable(matches, func(i, j int) bool { return matches[i].score > matches[j].score })

	out := make([]models.MenuHit, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.hit)
	}
	return out
}
