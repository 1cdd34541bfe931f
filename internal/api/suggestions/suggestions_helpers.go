package suggestions

import (
	"math"
	"sort"
	"strings"

	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

// maxHotelDistanceKm drops pool entries unreachable from the caller's hotel.
const maxHotelDistanceKm = 100.0

// calculateDistance returns the haversine distance between two coordinates
// in kilometers.
func calculateDistance(lat1, lon1, lat2, lon2 float64) float64 {
	const R = 6371 // Earth's radius in kilometers

	lat1Rad := lat1 * math.Pi / 180
	lon1Rad := lon1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	lon2Rad := lon2 * math.Pi / 180

	dlat := lat2Rad - lat1Rad
	dlon := lon2Rad - lon1Rad

	a := math.Sin(dlat/2)*math.Sin(dlat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*math.Sin(dlon/2)*math.Sin(dlon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return R * c
}

// popularityScore coarsens rating and review volume into one number. The
// log10 keeps a 4.5-star place with 200 reviews from outranking a 4.4-star
// place with 150,000.
func popularityScore(rating float64, ratingCount int) float64 {
	return rating * math.Log10(float64(ratingCount)+1)
}

// decileBuckets assigns each score its popularity decile (0..9) over the
// current pool. Buckets are precomputed once against the sorted score slice
// rather than re-derived per comparison during sorting.
func decileBuckets(scores []float64) []int {
	sorted := append([]float64(nil), scores...)
	sort.Float64s(sorted)

	buckets := make([]int, len(scores))
	for i, score := range scores {
		rank := sort.SearchFloat64s(sorted, score)
		bucket := int(float64(rank) / float64(len(sorted)) * 10)
		if bucket > 9 {
			bucket = 9
		}
		buckets[i] = bucket
	}
	return buckets
}

// genericNameBlocklist filters out provider results whose names carry no
// information ("Downtown" is not a point of interest).
var genericNameBlocklist = map[string]bool{
	"downtown":        true,
	"main street":     true,
	"the park":        true,
	"city center":     true,
	"city centre":     true,
	"old town":        true,
	"town center":     true,
	"shopping center": true,
}

func isGenericName(name string) bool {
	return genericNameBlocklist[normalizeTitle(name)]
}

// normalizeTitle collapses case and whitespace for exclusion matching.
func normalizeTitle(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// categoryRules maps provider type tags to the presentation category enum,
// in priority order; the first matching tag wins and unmatched POIs default
// to Landmark.
var categoryRules = []struct {
	tag      string
	category types.Category
}{
	{"museum", types.CategoryCulture},
	{"art_gallery", types.CategoryCulture},
	{"church", types.CategoryCulture},
	{"place_of_worship", types.CategoryCulture},
	{"library", types.CategoryCulture},
	{"restaurant", types.CategoryFood},
	{"cafe", types.CategoryFood},
	{"bakery", types.CategoryFood},
	{"food", types.CategoryFood},
	{"bar", types.CategoryFood},
	{"park", types.CategoryNature},
	{"natural_feature", types.CategoryNature},
	{"campground", types.CategoryNature},
	{"zoo", types.CategoryEntertainment},
	{"amusement_park", types.CategoryEntertainment},
	{"aquarium", types.CategoryEntertainment},
	{"night_club", types.CategoryEntertainment},
	{"movie_theater", types.CategoryEntertainment},
	{"stadium", types.CategoryEntertainment},
	{"shopping_mall", types.CategoryShopping},
	{"department_store", types.CategoryShopping},
	{"store", types.CategoryShopping},
	{"market", types.CategoryShopping},
}

func mapCategory(tags []string) types.Category {
	tagSet := make(map[string]bool, len(tags))
	for _, t := range tags {
		tagSet[t] = true
	}
	for _, rule := range categoryRules {
		if tagSet[rule.tag] {
			return rule.category
		}
	}
	return types.CategoryLandmark
}
