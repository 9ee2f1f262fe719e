package domain

import "time"

// Player is one Hall of Fame entry as returned by the game. An empty Guild
// means the player is unaffiliated.
type Player struct {
	Name  string
	Level int
	Guild string
	Rank  int
}

// GameState is the snapshot the session gateway returns after every command.
// Only the parts this toolkit consumes are modeled.
type GameState struct {
	HallOfFame []Player
}

// PlayerInfo is the emitted result record: one qualifying player.
type PlayerInfo struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// LevelChange records a player whose level rose between two scans.
type LevelChange struct {
	Name  string
	From  int
	To    int
	Delta int
}

// Assignment is a drawn winner together with their scheduled send time.
type Assignment struct {
	Player LevelChange
	SendAt time.Time
}
