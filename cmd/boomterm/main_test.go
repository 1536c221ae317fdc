package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
)

func TestPollEvents_StopsWhenDoneWithNoReader(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	// unbuffered and never read, so every forward would block
	events := make(chan tcell.Event)
	done := make(chan struct{})
	finished := make(chan struct{})
	go func() {
		pollEvents(screen, events, done)
		close(finished)
	}()

	screen.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	close(done)

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("poller still blocked after done was closed")
	}
}

func TestPollEvents_ForwardsKeys(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	defer screen.Fini()

	events := make(chan tcell.Event, 10)
	done := make(chan struct{})
	defer close(done)
	go pollEvents(screen, events, done)

	screen.InjectKey(tcell.KeyRune, 'w', tcell.ModNone)

	deadline := time.After(time.Second)
	for {
		select {
		case ev := <-events:
			if key, ok := ev.(*tcell.EventKey); ok {
				if key.Rune() != 'w' {
					t.Errorf("rune = %q, want 'w'", key.Rune())
				}
				return
			}
		case <-deadline:
			t.Fatal("key was not forwarded")
		}
	}
}
