package tui

type readyMsg struct{}

type clearStatusMsg struct{}
