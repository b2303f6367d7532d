package app

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"hotel_portal/internal/adapters/observability"
	"hotel_portal/internal/domain"
)

// CatalogService synthesizes the hotel view from the room service's raw
// inventory. Under the placeholder policy its reads never fail: an upstream
// failure yields the fixed demo data instead, logged and counted but not
// distinguished for the caller.
type CatalogService struct {
	rooms  domain.RoomsAPI
	policy domain.FallbackPolicy
	group  singleflight.Group
	log    zerolog.Logger
}

func NewCatalogService(rooms domain.RoomsAPI, policy domain.FallbackPolicy, log zerolog.Logger) *CatalogService {
	return &CatalogService{rooms: rooms, policy: policy, log: log}
}

func (s *CatalogService) GetHotels(ctx context.Context, filters map[string]string) ([]domain.Hotel, error) {
	records, err := s.fetchRooms(ctx, filters)
	if err != nil {
		if s.policy == domain.FallbackPropagate {
			return nil, err
		}
		s.log.Warn().Err(err).Msg("room service unavailable, serving placeholder hotel list")
		observability.ObserveFallback("hotels")
		return placeholderHotels(), nil
	}
	return synthesizeHotelList(records), nil
}

func (s *CatalogService) GetHotelByID(ctx context.Context, id int64) (domain.Hotel, error) {
	// the detail page shows the whole inventory regardless of id
	records, err := s.fetchRooms(ctx, nil)
	if err != nil {
		if s.policy == domain.FallbackPropagate {
			return domain.Hotel{}, err
		}
		s.log.Warn().Err(err).Int64("id", id).Msg("room service unavailable, serving placeholder hotel detail")
		observability.ObserveFallback("hotel_detail")
		return placeholderHotelDetail(id), nil
	}
	return synthesizeHotelDetail(id, records), nil
}

// fetchRooms collapses concurrent identical inventory fetches. Each portal
// request is still one sequential chain; this only dedupes across requests.
func (s *CatalogService) fetchRooms(ctx context.Context, filters map[string]string) ([]domain.RoomRecord, error) {
	v, err, _ := s.group.Do(filterKey(filters), func() (any, error) {
		return s.rooms.ListRooms(ctx, filters)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.RoomRecord), nil
}

func filterKey(filters map[string]string) string {
	if len(filters) == 0 {
		return "rooms"
	}
	keys := make([]string, 0, len(filters))
	for k := range filters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	var b strings.Builder
	b.WriteString("rooms")
	for _, k := range keys {
		fmt.Fprintf(&b, "|%s=%s", k, filters[k])
	}
	return b.String()
}
