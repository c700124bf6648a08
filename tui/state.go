package tui

type state int

const (
	inputState state = iota
	helpState
	errorState
)
