package suggestions

import (
	"strings"

	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

// curatedSuggestions keeps a hand-picked set per major city so an empty
// provider pool still produces a usable answer.
var curatedSuggestions = map[string][]types.Suggestion{
	"paris": {
		{Title: "Eiffel Tower", Category: types.CategoryLandmark,
			Description: "Wrought-iron lattice tower on the Champ de Mars, completed in 1889.",
			FunFact:     "The tower grows about 15 centimeters in summer because heat expands its 7,300 tons of iron."},
		{Title: "Louvre Museum", Category: types.CategoryCulture,
			Description: "Former royal palace housing one of the largest art collections in the world.",
			FunFact:     "Seeing every one of the Louvre's 35,000 displayed works for 30 seconds each would take around 100 days."},
		{Title: "Notre-Dame Cathedral", Category: types.CategoryCulture,
			Description: "Gothic cathedral on the Ile de la Cite, under restoration since the 2019 fire.",
			FunFact:     "Construction of Notre-Dame began in 1163 and took nearly 200 years to finish."},
		{Title: "Jardin du Luxembourg", Category: types.CategoryNature,
			Description: "Formal garden surrounding the Luxembourg Palace, seat of the French Senate.",
			FunFact:     "The garden covers 23 hectares and holds 106 statues spread along its gravel walks."},
		{Title: "Musee d'Orsay", Category: types.CategoryCulture,
			Description: "Impressionist museum in a converted Beaux-Arts railway station on the Left Bank.",
			FunFact:     "The building served as the Gare d'Orsay station from 1900 until its platforms became too short in 1939."},
	},
	"london": {
		{Title: "Tower of London", Category: types.CategoryLandmark,
			Description: "Medieval fortress on the Thames, home of the Crown Jewels.",
			FunFact:     "The White Tower at its center was begun by William the Conqueror around 1078."},
		{Title: "British Museum", Category: types.CategoryCulture,
			Description: "National museum of human history and culture with free admission.",
			FunFact:     "The museum opened in 1759 and its collection now counts roughly 8 million objects."},
		{Title: "Hyde Park", Category: types.CategoryNature,
			Description: "Royal park in central London covering 140 hectares.",
			FunFact:     "Hyde Park has hosted public debate at Speakers' Corner continuously since an 1872 act of Parliament."},
		{Title: "Borough Market", Category: types.CategoryFood,
			Description: "Food market near London Bridge with over a hundred stalls.",
			FunFact:     "A market has operated on or near the Borough Market site for more than 1,000 years."},
		{Title: "Westminster Abbey", Category: types.CategoryCulture,
			Description: "Gothic abbey church and coronation site of English monarchs.",
			FunFact:     "Every English and British coronation since 1066 has taken place at Westminster Abbey."},
	},
	"rome": {
		{Title: "Colosseum", Category: types.CategoryLandmark,
			Description: "Flavian amphitheatre completed in AD 80, the largest ever built.",
			FunFact:     "The Colosseum could seat around 50,000 spectators and be emptied in roughly 15 minutes."},
		{Title: "Pantheon", Category: types.CategoryCulture,
			Description: "Roman temple turned church with a famous unreinforced concrete dome.",
			FunFact:     "The Pantheon's dome spans 43 meters and remained the world's largest for over 1,300 years."},
		{Title: "Trevi Fountain", Category: types.CategoryLandmark,
			Description: "Baroque fountain at the end of the ancient Aqua Virgo aqueduct.",
			FunFact:     "Visitors throw about 3,000 euros into the Trevi Fountain every day, collected for charity."},
		{Title: "Villa Borghese", Category: types.CategoryNature,
			Description: "Landscape garden in the heart of Rome housing the Borghese Gallery.",
			FunFact:     "The park covers 80 hectares, making it the third largest public park in Rome."},
		{Title: "Campo de' Fiori", Category: types.CategoryFood,
			Description: "Square south of Piazza Navona hosting a daily produce market.",
			FunFact:     "A market has been held on Campo de' Fiori every morning except Sunday since 1869."},
	},
	"new york": {
		{Title: "Central Park", Category: types.CategoryNature,
			Description: "843-acre park in the middle of Manhattan, opened in 1858.",
			FunFact:     "Moving the park's roughly 10 million cartloads of soil and stone took 20,000 workers 15 years."},
		{Title: "Statue of Liberty", Category: types.CategoryLandmark,
			Description: "Copper statue on Liberty Island, a gift from France dedicated in 1886.",
			FunFact:     "The statue's copper skin is only 2.4 millimeters thick, about two pennies placed together."},
		{Title: "Metropolitan Museum of Art", Category: types.CategoryCulture,
			Description: "Largest art museum in the Americas, on the east edge of Central Park.",
			FunFact:     "The Met's collection spans 5,000 years and includes more than 1.5 million works."},
		{Title: "Brooklyn Bridge", Category: types.CategoryLandmark,
			Description: "Hybrid cable-stayed suspension bridge over the East River, finished in 1883.",
			FunFact:     "When it opened in 1883 the Brooklyn Bridge was the longest suspension bridge on Earth."},
		{Title: "Chelsea Market", Category: types.CategoryFood,
			Description: "Indoor food hall in a former Nabisco factory in the Meatpacking District.",
			FunFact:     "The Oreo cookie was invented in 1912 in the factory that now houses Chelsea Market."},
	},
	"tokyo": {
		{Title: "Senso-ji", Category: types.CategoryCulture,
			Description: "Ancient Buddhist temple in Asakusa, Tokyo's oldest.",
			FunFact:     "Senso-ji was founded in 645, nearly a thousand years before Tokyo became Japan's capital."},
		{Title: "Meiji Shrine", Category: types.CategoryCulture,
			Description: "Shinto shrine set in a forest of 100,000 donated trees.",
			FunFact:     "The shrine's forest was planted by hand from 100,000 trees donated from across Japan in 1920."},
		{Title: "Shibuya Crossing", Category: types.CategoryLandmark,
			Description: "Scramble intersection outside Shibuya Station.",
			FunFact:     "Up to 3,000 people cross Shibuya's scramble intersection at once during peak hours."},
		{Title: "Tsukiji Outer Market", Category: types.CategoryFood,
			Description: "Food market district with hundreds of shops and restaurants.",
			FunFact:     "The outer market kept its 400-plus shops when the inner wholesale market moved to Toyosu in 2018."},
		{Title: "Ueno Park", Category: types.CategoryNature,
			Description: "Spacious public park holding several national museums and a zoo.",
			FunFact:     "Ueno Park was established in 1873 on former temple land, one of Japan's first public parks."},
	},
	"barcelona": {
		{Title: "Sagrada Familia", Category: types.CategoryLandmark,
			Description: "Gaudi's unfinished basilica, under construction since 1882.",
			FunFact:     "Construction of the Sagrada Familia began in 1882 and is planned to finish in the 2030s."},
		{Title: "Park Güell", Category: types.CategoryNature,
			Description: "Hillside park designed by Antoni Gaudi with mosaic-covered terraces.",
			FunFact:     "Park Güell was planned in 1900 as a housing estate of 60 plots, of which only 2 sold."},
		{Title: "La Boqueria", Category: types.CategoryFood,
			Description: "Public market off La Rambla with more than 200 stalls.",
			FunFact:     "A market has stood at La Boqueria's gates since 1217, first selling meat from tables."},
		{Title: "Casa Batllo", Category: types.CategoryCulture,
			Description: "Modernist house on Passeig de Gracia remodeled by Gaudi in 1904.",
			FunFact:     "Casa Batllo's facade is covered in trencadis made from 330 broken ceramic pieces per square meter."},
		{Title: "Gothic Quarter", Category: types.CategoryCulture,
			Description: "Oldest part of Barcelona, built over the Roman town of Barcino.",
			FunFact:     "Parts of the Roman wall from the 4th century still stand inside the Gothic Quarter."},
	},
}

// matchCurated selects a curated set by case-insensitive bidirectional
// substring match, so "Paris, France" still hits "paris".
func matchCurated(city string) []types.Suggestion {
	needle := strings.ToLower(strings.TrimSpace(city))
	if needle == "" {
		return nil
	}
	for key, set := range curatedSuggestions {
		if strings.Contains(needle, key) || strings.Contains(key, needle) {
			return set
		}
	}
	return nil
}
