package quiz

import (
	"fmt"
	"strings"
)

func buildTriviaPrompt(cityLabel string, poiNames []string, difficulty string, count int) string {
	poiPart := ""
	if len(poiNames) > 0 {
		poiPart = fmt.Sprintf(`
        At least 60%% of the questions MUST be about these real places in the city: [%s].
        Use verified facts about these places only; do not invent places.`, strings.Join(poiNames, "; "))
	}
	return fmt.Sprintf(`
        Generate exactly %d %s trivia questions about %s.%s
        Rules:
        - NEVER ask generic geography questions (capital, currency, language, continent, population, which country a city is in).
        - Vary which option is correct; do not always put the right answer first.
        - Each funFact must be a real, specific fact with a number, year, or proper noun.
        Return the response STRICTLY as a JSON array:
        [
            {
            "question": "The question text",
            "options": ["option A", "option B", "option C", "option D"],
            "correctIndex": <0-3>,
            "funFact": "One surprising, specific fact related to the answer."
            }
        ]`, count, difficulty, cityLabel, poiPart)
}
