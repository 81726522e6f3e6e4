package service

import (
	"strings"

	"afisha/internal/models"
)

// MatchByName performs case-insensitive substring matching of term against
// each item's name. An empty term matches every record; the search page
// doubles as a browse-all affordance.
func MatchByName(term string, items []models.ListItem) models.SearchResponse {
	needle := strings.ToLower(term)

	results := make([]models.ListItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) {
			results = append(results, item)
		}
	}

	return models.SearchResponse{Count: len(results), Data: results}
}
