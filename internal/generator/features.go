package generator

import (
	"realestate-seed/internal/models"
	"realestate-seed/internal/reference"
)

// GenerateFeatures materializes the fixed feature catalog.
func GenerateFeatures() []models.Feature {
	catalog := reference.FeatureCatalog()
	features := make([]models.Feature, 0, len(catalog))
	for _, f := range catalog {
		features = append(features, models.Feature{
			FeatureID:   f.ID,
			Description: f.Description,
			Type:        f.Type,
			SubType:     f.SubType,
		})
	}
	return features
}

// GeneratePropertyFeatures gives every property 1-4 distinct catalog
// features, then shuffles the links and applies CapPropertyFeatures.
func GeneratePropertyFeatures(s *State, z Sizes) []models.PropertyFeature {
	catalog := reference.FeatureCatalog()
	featureIDs := make([]int, 0, len(catalog))
	for _, f := range catalog {
		featureIDs = append(featureIDs, f.ID)
	}

	var links []models.PropertyFeature
	for propertyID := 1; propertyID <= z.Properties; propertyID++ {
		n := s.intBetween(1, 4)
		for _, featureID := range s.sample(featureIDs, n) {
			links = append(links, models.PropertyFeature{PropertyID: propertyID, FeatureID: featureID})
		}
	}

	s.rng.Shuffle(len(links), func(i, j int) { links[i], links[j] = links[j], links[i] })
	return CapPropertyFeatures(links, z.MaxPropertyFeatures)
}

// CapPropertyFeatures truncates links to at most limit rows. Properties whose
// links all fall past the cap end up with no features.
func CapPropertyFeatures(links []models.PropertyFeature, limit int) []models.PropertyFeature {
	if len(links) > limit {
		return links[:limit]
	}
	return links
}
