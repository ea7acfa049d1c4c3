package entity

import "time"

// Result is the outcome of one simulation run.
type Result struct {
	ID         string        `json:"id"`
	Players    int           `json:"players"`
	LastMarble int           `json:"last_marble"`
	HighScore  int           `json:"high_score"`
	Winner     int           `json:"winner"`
	Elapsed    time.Duration `json:"elapsed"`
}

// Answers are the two puzzle answers: the game as given and the game with a
// last marble multiplied by Multiplier.
type Answers struct {
	Normal     *Result `json:"normal"`
	Extended   *Result `json:"extended"`
	Multiplier int     `json:"multiplier"`
}
