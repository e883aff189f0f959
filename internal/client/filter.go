package client

import (
	"strings"

	"github.com/yogeshwar16/realestatehousing/internal/domain/entities"
)

// FilterProperties applies the local filter pass over an already-fetched
// list: exact property-type match plus case-insensitive substring search
// over title, city, and address. Both criteria compose as an intersection.
// This pass is independent of any server-side query filtering.
func FilterProperties(props []entities.Property, typ *entities.PropertyType, search string) []entities.Property {
	filtered := props

	if typ != nil {
		var byType []entities.Property
		for _, p := range filtered {
			if p.PropertyType == *typ {
				byType = append(byType, p)
			}
		}
		filtered = byType
	}

	if search != "" {
		term := strings.ToLower(search)
		var bySearch []entities.Property
		for _, p := range filtered {
			if strings.Contains(strings.ToLower(p.Title), term) ||
				strings.Contains(strings.ToLower(p.City), term) ||
				strings.Contains(strings.ToLower(p.Address), term) {
				bySearch = append(bySearch, p)
			}
		}
		filtered = bySearch
	}

	return filtered
}
