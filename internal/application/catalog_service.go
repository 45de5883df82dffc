package application

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/staybook/backend/internal/domain/entity"
	repo "github.com/staybook/backend/internal/domain/repository"
)

// CatalogService serves hotel browsing and search. The catalog itself is
// authoritative; Elasticsearch only ranks, and results are resolved back
// through the fixture so stale index documents cannot leak bad data.
type CatalogService struct {
	Catalog       repo.Catalog
	ES            *elasticsearch.Client
	ESHotelsIndex string
	Logger        *logrus.Logger
}

func (s *CatalogService) Hotels() []entity.Hotel {
	return s.Catalog.Hotels()
}

func (s *CatalogService) HotelByID(id string) (*entity.Hotel, bool) {
	return s.Catalog.HotelByID(id)
}

func (s *CatalogService) RoomByID(hotelID, roomID string) (*entity.Hotel, *entity.Room, bool) {
	return s.Catalog.RoomByID(hotelID, roomID)
}

// Search performs a multi_match query on name, location, and description.
// Without Elasticsearch it falls back to a substring scan of the fixture.
func (s *CatalogService) Search(ctx context.Context, q string, size int) ([]entity.Hotel, error) {
	if size <= 0 || size > 50 {
		size = 10
	}
	if s.ES == nil || s.ESHotelsIndex == "" {
		return s.scanSearch(q, size), nil
	}

	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"name^2", "location", "description"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(
		s.ES.Search.WithContext(c),
		s.ES.Search.WithIndex(s.ESHotelsIndex),
		s.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).Warn("es search failed, falling back to scan")
		}
		return s.scanSearch(q, size), nil
	}
	defer func() { _ = res.Body.Close() }()

	var parsed struct {
		Hits struct {
			Hits []struct {
				ID string `json:"_id"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}

	out := make([]entity.Hotel, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		if hotel, ok := s.Catalog.HotelByID(h.ID); ok {
			out = append(out, *hotel)
		}
	}
	return out, nil
}

func (s *CatalogService) scanSearch(q string, size int) []entity.Hotel {
	q = strings.ToLower(strings.TrimSpace(q))
	out := []entity.Hotel{}
	if q == "" {
		return out
	}
	for _, h := range s.Catalog.Hotels() {
		if len(out) >= size {
			break
		}
		hay := strings.ToLower(h.Name + " " + h.Location + " " + h.Description)
		if strings.Contains(hay, q) {
			out = append(out, h)
		}
	}
	return out
}

// IndexHotels writes every catalog hotel into the search index. The seed
// command runs this once at deploy time.
func (s *CatalogService) IndexHotels(ctx context.Context) error {
	if s.ES == nil || s.ESHotelsIndex == "" {
		return nil
	}
	for _, h := range s.Catalog.Hotels() {
		doc := map[string]any{
			"id":          h.ID,
			"name":        h.Name,
			"location":    h.Location,
			"description": h.Description,
			"rating":      h.Rating,
			"price":       h.Price,
			"amenities":   h.Amenities,
		}
		b, _ := json.Marshal(doc)
		req := esapi.IndexRequest{Index: s.ESHotelsIndex, DocumentID: h.ID, Body: strings.NewReader(string(b)), Refresh: "false"}
		c, cancel := context.WithTimeout(ctx, 3*time.Second)
		res, err := req.Do(c, s.ES)
		cancel()
		if err != nil {
			if s.Logger != nil {
				s.Logger.WithError(err).WithField("hotel_id", h.ID).Warn("es index failed")
			}
			return err
		}
		if res.IsError() && s.Logger != nil {
			s.Logger.WithField("status", res.Status()).WithField("hotel_id", h.ID).Warn("es index response error")
		}
		_ = res.Body.Close()
	}
	return nil
}
