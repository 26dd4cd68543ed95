package searcher

import "solver/game"

// mockState is a non-terminal state with a fixed mover and move list whose
// children are terminal draws.
type mockState struct {
	player   game.Player
	moves    []game.Move
	played   game.History
	terminal bool
}

func (m mockState) Player() game.Player {
	return m.player
}

func (m mockState) LegalMoves() []game.Move {
	return m.moves
}

func (m mockState) Play(move game.Move) (game.State, error) {
	return mockState{played: m.played.Append(move), terminal: true}, nil
}

func (m mockState) IsTerminal() bool {
	return m.terminal
}

func (m mockState) Utility() float64 {
	return Draw
}

func (m mockState) History() game.History {
	return m.played
}

func (m mockState) Labels() int {
	return 9
}

func (m mockState) Outcomes() []float64 {
	return []float64{Loss, Draw, Win}
}

func (m mockState) Signature() string {
	return "mock" + m.played.Key()
}
