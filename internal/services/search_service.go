package services

import (
	"context"
	"strings"

	"github.com/mentorhub/mentorhub-api/internal/models"
	"github.com/mentorhub/mentorhub-api/internal/repository"
	"github.com/mentorhub/mentorhub-api/pkg/metrics"
)

// SearchService finds other users by name or expertise
type SearchService struct {
	users repository.UserStore
	limit int
}

// NewSearchService creates a new SearchService. limit 0 returns every match.
func NewSearchService(users repository.UserStore, limit int) *SearchService {
	return &SearchService{
		users: users,
		limit: limit,
	}
}

// Search matches term case-insensitively against name and expertise,
// excluding the searching user. Results carry no email.
func (s *SearchService) Search(ctx context.Context, user models.SessionUser, term string) ([]models.PublicProfile, error) {
	results, err := s.users.Search(ctx, models.UserSearchFilter{
		Term:          strings.TrimSpace(term),
		ExcludeUserID: user.UserID,
		Limit:         s.limit,
	})
	if err != nil {
		return nil, err
	}

	for i := range results {
		results[i].Email = ""
	}

	metrics.SearchResultsReturned.Observe(float64(len(results)))
	return results, nil
}
