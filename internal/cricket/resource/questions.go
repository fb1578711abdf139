package resource

import "github.com/bloops-games/quizcricket/internal/cricket/catalog"

var Questions = []catalog.Question{
	// Geography
	{Text: "What is the capital of France?", Options: [4]string{"Paris", "London", "Berlin", "Madrid"}, Correct: 0},
	{Text: "Which river flows through Egypt?", Options: [4]string{"Amazon", "Nile", "Thames", "Ganges"}, Correct: 1},
	{Text: "What is the largest ocean?", Options: [4]string{"Atlantic", "Indian", "Pacific", "Arctic"}, Correct: 2},
	{Text: "Which country has the most people?", Options: [4]string{"USA", "India", "China", "Russia"}, Correct: 2},
	{Text: "What is the capital of Japan?", Options: [4]string{"Seoul", "Beijing", "Tokyo", "Bangkok"}, Correct: 2},
	{Text: "Which mountain is the tallest?", Options: [4]string{"K2", "Mount Everest", "Kilimanjaro", "Denali"}, Correct: 1},
	{Text: "What is the capital of Australia?", Options: [4]string{"Sydney", "Melbourne", "Canberra", "Perth"}, Correct: 2},
	{Text: "Which continent is the Sahara Desert in?", Options: [4]string{"Asia", "Africa", "Australia", "South America"}, Correct: 1},
	{Text: "What ocean is west of the USA?", Options: [4]string{"Atlantic", "Pacific", "Arctic", "Indian"}, Correct: 1},
	{Text: "Which country is shaped like a boot?", Options: [4]string{"Spain", "Greece", "Italy", "Portugal"}, Correct: 2},
	{Text: "What is the smallest continent?", Options: [4]string{"Europe", "Antarctica", "Australia", "South America"}, Correct: 2},
	{Text: "Which city is called the Big Apple?", Options: [4]string{"Los Angeles", "Chicago", "New York", "Boston"}, Correct: 2},
	{Text: "What is the capital of Spain?", Options: [4]string{"Barcelona", "Madrid", "Seville", "Valencia"}, Correct: 1},

	// Science
	{Text: "What gas do plants need for photosynthesis?", Options: [4]string{"Oxygen", "Nitrogen", "Carbon Dioxide", "Hydrogen"}, Correct: 2},
	{Text: "What is the smallest unit of life?", Options: [4]string{"Atom", "Cell", "Molecule", "Tissue"}, Correct: 1},
	{Text: "How many bones does an adult human have?", Options: [4]string{"186", "206", "226", "246"}, Correct: 1},
	{Text: "What is H2O?", Options: [4]string{"Oxygen", "Hydrogen", "Water", "Salt"}, Correct: 2},
	{Text: "What planet is closest to the Sun?", Options: [4]string{"Venus", "Mars", "Mercury", "Earth"}, Correct: 2},
	{Text: "What force keeps us on Earth?", Options: [4]string{"Magnetism", "Electricity", "Gravity", "Friction"}, Correct: 2},

	// Sports
	{Text: "How many players on a basketball team (on court)?", Options: [4]string{"4", "5", "6", "7"}, Correct: 1},
	{Text: "What sport is played at Wimbledon?", Options: [4]string{"Cricket", "Tennis", "Golf", "Rugby"}, Correct: 1},
	{Text: "How many players on a football team?", Options: [4]string{"9", "10", "11", "12"}, Correct: 2},
	{Text: "What color are the goalposts in rugby?", Options: [4]string{"Yellow", "White", "Red", "Blue"}, Correct: 1},
	{Text: "How many Olympic rings are there?", Options: [4]string{"4", "5", "6", "7"}, Correct: 1},
	{Text: "In cricket, how many stumps are there?", Options: [4]string{"2", "3", "4", "5"}, Correct: 1},

	// History and culture
	{Text: "Who wrote Romeo and Juliet?", Options: [4]string{"Dickens", "Shakespeare", "Austen", "Tolkien"}, Correct: 1},
	{Text: "When did World War II end?", Options: [4]string{"1943", "1944", "1945", "1946"}, Correct: 2},
	{Text: "Who was the first US President?", Options: [4]string{"Jefferson", "Washington", "Lincoln", "Adams"}, Correct: 1},
	{Text: "When did humans first land on the Moon?", Options: [4]string{"1965", "1967", "1969", "1971"}, Correct: 2},
	{Text: "Who painted the Mona Lisa?", Options: [4]string{"Picasso", "Van Gogh", "Da Vinci", "Michelangelo"}, Correct: 2},
	{Text: "Which ancient wonder still stands?", Options: [4]string{"Colossus", "Pyramids of Giza", "Hanging Gardens", "Lighthouse"}, Correct: 1},

	// Math
	{Text: "What is 12 x 8?", Options: [4]string{"84", "92", "96", "104"}, Correct: 2},
	{Text: "What is 50% of 200?", Options: [4]string{"50", "75", "100", "125"}, Correct: 2},
	{Text: "What is the square root of 64?", Options: [4]string{"6", "7", "8", "9"}, Correct: 2},
	{Text: "What is 15 + 27?", Options: [4]string{"40", "41", "42", "43"}, Correct: 2},
	{Text: "How many sides does a hexagon have?", Options: [4]string{"5", "6", "7", "8"}, Correct: 1},
	{Text: "What is 9 x 7?", Options: [4]string{"54", "56", "63", "72"}, Correct: 2},
}
