package quiz

import (
	"fmt"
	"strings"

	"github.com/selinamariefuchs/brain-trip-planner/internal/types"
)

// curatedQuestions holds hand-checked question sets for major cities, used
// when live generation yields too little and no groundable place id exists.
var curatedQuestions = map[string][]types.TriviaQuestion{
	"paris": {
		{
			Question:     "Which Paris museum houses the Mona Lisa?",
			Options:      []string{"The Louvre", "Musée d'Orsay", "Centre Pompidou", "Musée Rodin"},
			CorrectIndex: 0,
			FunFact:      "The Louvre was a royal palace for centuries before opening as a museum in 1793.",
		},
		{
			Question:     "For which event was the Eiffel Tower built?",
			Options:      []string{"The 1900 Olympics", "The 1889 World's Fair", "Napoleon's coronation", "The French Revolution centennial ball"},
			CorrectIndex: 1,
			FunFact:      "Gustave Eiffel's tower was meant to stand for only 20 years before being dismantled.",
		},
		{
			Question:     "Which river island holds Notre-Dame cathedral?",
			Options:      []string{"Île Saint-Louis", "Île aux Cygnes", "Île de la Cité", "Île Seguin"},
			CorrectIndex: 2,
			FunFact:      "Construction of Notre-Dame began in 1163 and took nearly 200 years to complete.",
		},
		{
			Question:     "What sits at the top of the Avenue des Champs-Élysées?",
			Options:      []string{"The Panthéon", "Sacré-Cœur", "Place de la Bastille", "The Arc de Triomphe"},
			CorrectIndex: 3,
			FunFact:      "The Arc de Triomphe is 50 meters tall and honors those who fought in the Napoleonic Wars.",
		},
	},
	"london": {
		{
			Question:     "What is the actual name of the tower commonly called Big Ben?",
			Options:      []string{"Elizabeth Tower", "Victoria Tower", "The Shard", "Westminster Spire"},
			CorrectIndex: 0,
			FunFact:      "Big Ben is strictly the nickname of the 13.7-ton bell inside Elizabeth Tower.",
		},
		{
			Question:     "Which London museum displays the Rosetta Stone?",
			Options:      []string{"The Natural History Museum", "The British Museum", "Tate Modern", "The V&A"},
			CorrectIndex: 1,
			FunFact:      "The British Museum opened in 1759 and was the world's first national public museum.",
		},
		{
			Question:     "Which fortress on the Thames guards the Crown Jewels?",
			Options:      []string{"Windsor Castle", "Hampton Court", "The Tower of London", "Buckingham Palace"},
			CorrectIndex: 2,
			FunFact:      "At least six ravens are kept at the Tower of London by royal decree dating to Charles II.",
		},
		{
			Question:     "What was the Globe Theatre originally built for?",
			Options:      []string{"Opera", "Royal banquets", "Bear baiting", "Shakespeare's acting company"},
			CorrectIndex: 3,
			FunFact:      "The original Globe burned down in 1613 when a stage cannon misfired during Henry VIII.",
		},
	},
	"rome": {
		{
			Question:     "How many spectators could the Colosseum hold at its peak?",
			Options:      []string{"Around 50,000", "Around 5,000", "Around 200,000", "Around 15,000"},
			CorrectIndex: 0,
			FunFact:      "The Colosseum could be flooded to stage mock naval battles in its early years.",
		},
		{
			Question:     "Into which fountain do visitors traditionally throw a coin?",
			Options:      []string{"Fontana del Moro", "The Trevi Fountain", "Fountain of the Naiads", "Triton Fountain"},
			CorrectIndex: 1,
			FunFact:      "About 3,000 euros are tossed into the Trevi Fountain every day and donated to charity.",
		},
		{
			Question:     "What ancient building has a 9-meter hole, the oculus, in its dome?",
			Options:      []string{"The Forum", "Circus Maximus", "The Pantheon", "Baths of Caracalla"},
			CorrectIndex: 2,
			FunFact:      "The Pantheon's concrete dome has been the world's largest unreinforced dome for 1,900 years.",
		},
		{
			Question:     "Which famous steps connect Piazza di Spagna to Trinità dei Monti?",
			Options:      []string{"The Vatican Steps", "Capitoline Steps", "Aventine Stairs", "The Spanish Steps"},
			CorrectIndex: 3,
			FunFact:      "The Spanish Steps, 135 in total, were completed in 1725 with French funding.",
		},
	},
	"new york": {
		{
			Question:     "Which country gifted the Statue of Liberty to the United States?",
			Options:      []string{"France", "England", "Spain", "The Netherlands"},
			CorrectIndex: 0,
			FunFact:      "The Statue of Liberty's copper skin is only 2.4 millimeters thick, thinner than two pennies.",
		},
		{
			Question:     "What was Central Park's design competition won by?",
			Options:      []string{"The Beaux-Arts plan", "The Greensward Plan", "The Hudson Scheme", "The Commissioners' Grid"},
			CorrectIndex: 1,
			FunFact:      "Central Park covers 843 acres and was the first landscaped public park in the United States.",
		},
		{
			Question:     "How long did it take to build the Empire State Building?",
			Options:      []string{"Seven years", "Four years", "Just 410 days", "A decade"},
			CorrectIndex: 2,
			FunFact:      "The Empire State Building rose at a rate of roughly four and a half floors per week in 1930.",
		},
		{
			Question:     "Which bridge connects Manhattan to Brooklyn and opened in 1883?",
			Options:      []string{"The Manhattan Bridge", "The Williamsburg Bridge", "The George Washington Bridge", "The Brooklyn Bridge"},
			CorrectIndex: 3,
			FunFact:      "Twenty-one elephants were paraded across the Brooklyn Bridge in 1884 to prove its strength.",
		},
	},
	"tokyo": {
		{
			Question:     "What is the name of Tokyo's famous scramble crossing?",
			Options:      []string{"Shibuya Crossing", "Ginza Crossing", "Shinjuku Scramble", "Harajuku Junction"},
			CorrectIndex: 0,
			FunFact:      "Up to 3,000 people cross Shibuya Crossing at once during peak hours.",
		},
		{
			Question:     "Which Tokyo temple is the city's oldest, founded in 645?",
			Options:      []string{"Meiji Shrine", "Sensō-ji", "Zōjō-ji", "Yasukuni Shrine"},
			CorrectIndex: 1,
			FunFact:      "Sensō-ji's Kaminarimon gate hangs a red lantern weighing about 700 kilograms.",
		},
		{
			Question:     "What height makes Tokyo Skytree Japan's tallest structure?",
			Options:      []string{"333 meters", "450 meters", "634 meters", "828 meters"},
			CorrectIndex: 2,
			FunFact:      "Tokyo Skytree's height of 634 meters reads as 'Musashi', an old name for the region.",
		},
		{
			Question:     "Which district is Tokyo's center of electronics and anime culture?",
			Options:      []string{"Roppongi", "Asakusa", "Ueno", "Akihabara"},
			CorrectIndex: 3,
			FunFact:      "Akihabara earned the nickname Electric Town selling radio parts after 1945.",
		},
	},
	"barcelona": {
		{
			Question:     "Which architect designed the Sagrada Família?",
			Options:      []string{"Antoni Gaudí", "Lluís Domènech", "Josep Puig", "Santiago Calatrava"},
			CorrectIndex: 0,
			FunFact:      "The Sagrada Família has been under construction since 1882 and is funded by visitors.",
		},
		{
			Question:     "What is the name of Barcelona's famous tree-lined pedestrian street?",
			Options:      []string{"Passeig de Gràcia", "La Rambla", "Avinguda Diagonal", "Carrer de Balmes"},
			CorrectIndex: 1,
			FunFact:      "La Rambla runs 1.2 kilometers from Plaça de Catalunya down to the old harbor.",
		},
		{
			Question:     "Which hilltop park is filled with Gaudí's mosaic work?",
			Options:      []string{"Montjuïc", "Ciutadella", "Park Güell", "Tibidabo"},
			CorrectIndex: 2,
			FunFact:      "Park Güell was planned as a housing estate in 1900 but only two houses were ever sold.",
		},
		{
			Question:     "In which quarter do Roman walls still stand among medieval lanes?",
			Options:      []string{"El Born", "Gràcia", "Barceloneta", "The Gothic Quarter"},
			CorrectIndex: 3,
			FunFact:      "Parts of the Gothic Quarter's Roman wall date to the 4th century settlement of Barcino.",
		},
	},
}

// matchCurated finds a curated set by case-insensitive substring match in
// either direction (so "New York City" matches "new york").
func matchCurated(city string) []types.TriviaQuestion {
	needle := strings.ToLower(strings.TrimSpace(city))
	if needle == "" {
		return nil
	}
	for key, set := range curatedQuestions {
		if strings.Contains(needle, key) || strings.Contains(key, needle) {
			return set
		}
	}
	return nil
}

// genericQuestions builds a template question set parameterized by city
// name, the last rung of the fallback ladder.
func genericQuestions(city string) []types.TriviaQuestion {
	return []types.TriviaQuestion{
		{
			Question:     fmt.Sprintf("Which of these is the best way to discover the historic center of %s?", city),
			Options:      []string{"A guided walking tour", "Staying at the airport", "Watching from a highway", "Reading only flight schedules"},
			CorrectIndex: 0,
			FunFact:      fmt.Sprintf("Most of %s's oldest landmarks sit within walking distance of its historic core.", city),
		},
		{
			Question:     fmt.Sprintf("What do most visitors to %s look for first?", city),
			Options:      []string{"Parking regulations", "Its signature landmarks and viewpoints", "Local tax offices", "Industrial suburbs"},
			CorrectIndex: 1,
			FunFact:      fmt.Sprintf("Landmark sights typically anchor the top ten lists travelers compile for %s.", city),
		},
		{
			Question:     fmt.Sprintf("Which option best captures the food scene of %s?", city),
			Options:      []string{"There is no food sold", "Only imported canned goods", "Local markets and regional specialties", "A single restaurant"},
			CorrectIndex: 2,
			FunFact:      fmt.Sprintf("Market halls are often the oldest continuously operating businesses in cities like %s.", city),
		},
		{
			Question:     fmt.Sprintf("When is %s typically most crowded with visitors?", city),
			Options:      []string{"Never", "Only on leap days", "During overnight hours", "In the main tourist season"},
			CorrectIndex: 3,
			FunFact:      fmt.Sprintf("Shoulder-season visits to %s usually mean shorter queues at the best-known sights.", city),
		},
	}
}
