package game

// Input is polled once per tick for an early exit request.
type Input interface {
	QuitRequested() bool
}

// InputFunc adapts a plain function to Input.
type InputFunc func() bool

func (f InputFunc) QuitRequested() bool { return f() }

// NoInput never asks to quit.
var NoInput Input = InputFunc(func() bool { return false })
