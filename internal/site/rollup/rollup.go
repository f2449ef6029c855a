// Package rollup derives the total floor space and primary use type of a site.
package rollup

import "github.com/smallbiznis/sitesapi/internal/site/domain"

// Aggregate folds the site's uses in order. A use type becomes primary only when its
// running total strictly exceeds the current leader, so the first type to reach a
// tied value keeps primacy.
func Aggregate(site domain.Site) domain.EnrichedSite {
	var (
		totalSize   int64
		maxSize     int64
		primaryType *domain.UseType
		perType     = make(map[int64]int64, len(site.SiteUses))
	)

	for i := range site.SiteUses {
		use := site.SiteUses[i]
		totalSize += use.SizeSqft

		typeID := use.UseType.ID
		perType[typeID] += use.SizeSqft
		if perType[typeID] > maxSize {
			maxSize = perType[typeID]
			useType := use.UseType
			primaryType = &useType
		}
	}

	return domain.EnrichedSite{
		Site:        site,
		TotalSize:   totalSize,
		PrimaryType: primaryType,
	}
}

// AggregateAll aggregates each site, preserving order.
func AggregateAll(sites []domain.Site) []domain.EnrichedSite {
	out := make([]domain.EnrichedSite, 0, len(sites))
	for _, site := range sites {
		out = append(out, Aggregate(site))
	}
	return out
}
