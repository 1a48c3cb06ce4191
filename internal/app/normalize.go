package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mkarimian/geochron/internal/domain/model"
	"github.com/mkarimian/geochron/pkg/logger"
	"github.com/mkarimian/geochron/pkg/metrics"
)

// normalizeAuthor validates the raw payload route by route. A route missing
// an endpoint coordinate or a resolvable year is dropped and logged — one
// malformed entry must not block an entire biography from rendering. Routes
// without an id get a generated one so feature registration stays keyed.
func (s *Service) normalizeAuthor(ctx context.Context, payload model.Author) *model.Author {
	author := &model.Author{
		ID:         payload.ID,
		Name:       payload.Name,
		ThemeColor: payload.ThemeColor,
		Works:      make([]model.Work, 0, len(payload.Works)),
	}

	for _, work := range payload.Works {
		normalized := model.Work{
			ID:     work.ID,
			Title:  work.Title,
			Year:   work.Year,
			Routes: make([]model.Route, 0, len(work.Routes)),
		}

		for _, route := range work.Routes {
			if err := s.validateRoute(&route, work.Year); err != nil {
				metrics.RecordRouteDropped()
				s.logger.Warn(ctx, "dropping invalid route",
					logger.String("author_id", payload.ID),
					logger.String("work_id", work.ID),
					logger.String("route_id", route.ID),
					logger.Error(err),
				)
				continue
			}
			if route.ID == "" {
				route.ID = uuid.NewString()
			}
			normalized.Routes = append(normalized.Routes, route)
		}

		author.Works = append(author.Works, normalized)
	}

	return author
}

// validateRoute checks coordinates on both endpoints and resolves the year,
// mutating route.Year to the work-level fallback when the route carries none.
func (s *Service) validateRoute(route *model.Route, workYear int) error {
	if err := route.StartLocation.Coordinates.Validate(); err != nil {
		return err
	}
	if err := route.EndLocation.Coordinates.Validate(); err != nil {
		return err
	}
	if route.Year == 0 {
		route.Year = workYear
	}
	if route.Year == 0 {
		return ErrRouteValidation
	}
	return nil
}
