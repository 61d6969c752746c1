package core

// PlayerID identifies a player within a game session.
// Player1 is always the local human player, Player2 can be CPU or remote player.
// The zero value means "no player" (e.g., no winner yet).
type PlayerID int

// Player identifiers. Zero is reserved for "no player".
const (
	Player1 PlayerID = 1
	Player2 PlayerID = 2
)
