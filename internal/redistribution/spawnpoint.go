package redistribution

import "github.com/osse101/AmmoBalance_Go/internal/domain"

// ComposedKey returns the instance id used for a synthesized variant item.
func ComposedKey(variantID string) string {
	return variantID + ComposedKeySuffix
}

// PatchSpawnPoint adds a sibling instance for every non-origin variant next to
// each instance of the origin, weighted by the variant's fraction of the
// origin instance's distribution weight. The origin's own distribution entry
// is left as is. Instances appended here are never matched as origins.
//
// With idempotent set, a variant whose composed key already names an instance
// of the spawn point is not synthesized again.
func PatchSpawnPoint(point *domain.SpawnPoint, originID string, shares []Share, idempotent bool) (added int) {
	itemCount := len(point.Template.Items)
	for i := 0; i < itemCount; i++ {
		origin := point.Template.Items[i]
		if origin.Tpl != originID {
			continue
		}

		for _, s := range shares {
			if s.VariantID == originID {
				continue
			}
			key := ComposedKey(s.VariantID)

			distCount := len(point.ItemDistribution)
			for d := 0; d < distCount; d++ {
				dist := point.ItemDistribution[d]
				if dist.ComposedKey.Key != origin.ID {
					continue
				}
				if idempotent && point.HasInstance(key) {
					continue
				}

				point.Template.Items = append(point.Template.Items, domain.ItemInstance{
					ID:  key,
					Tpl: s.VariantID,
					Upd: copyUpd(origin.Upd),
				})
				point.ItemDistribution = append(point.ItemDistribution, domain.DistributionEntry{
					ComposedKey:         domain.ComposedKey{Key: key},
					RelativeProbability: max(scaleWeight(dist.RelativeProbability, s.Fraction), MinSpawnWeight),
				})
				added++
			}
		}
	}
	return added
}

// PatchLocations runs PatchSpawnPoint over every spawn point of the listed maps.
// Maps absent from locations are ignored.
func PatchLocations(locations map[string]*domain.Location, maps []string, originID string, shares []Share, idempotent bool) (added int) {
	for _, name := range maps {
		loc, ok := locations[name]
		if !ok || loc == nil {
			continue
		}
		points := loc.LooseLoot.Spawnpoints
		for i := range points {
			added += PatchSpawnPoint(&points[i], originID, shares, idempotent)
		}
	}
	return added
}

func copyUpd(upd *domain.ItemUpd) *domain.ItemUpd {
	if upd == nil {
		return nil
	}
	c := *upd
	return &c
}
