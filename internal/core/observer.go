package core

// Observer receives score and lives updates pushed by a running game.
// Calls happen synchronously on the game's frame goroutine.
type Observer interface {
	ScoreChanged(score int)
	LivesChanged(lives int)
}

// ObserverFuncs adapts plain functions to the Observer interface.
// Nil fields are skipped.
type ObserverFuncs struct {
	OnScore func(score int)
	OnLives func(lives int)
}

// ScoreChanged implements Observer.
func (o ObserverFuncs) ScoreChanged(score int) {
	if o.OnScore != nil {
		o.OnScore(score)
	}
}

// LivesChanged implements Observer.
func (o ObserverFuncs) LivesChanged(lives int) {
	if o.OnLives != nil {
		o.OnLives(lives)
	}
}

// NopObserver discards all updates.
type NopObserver struct{}

func (NopObserver) ScoreChanged(int) {}
func (NopObserver) LivesChanged(int) {}

// MultiObserver fans updates out to several observers in order.
// Nil entries are skipped.
type MultiObserver []Observer

// ScoreChanged implements Observer.
func (m MultiObserver) ScoreChanged(score int) {
	for _, o := range m {
		if o != nil {
			o.ScoreChanged(score)
		}
	}
}

// LivesChanged implements Observer.
func (m MultiObserver) LivesChanged(lives int) {
	for _, o := range m {
		if o != nil {
			o.LivesChanged(lives)
		}
	}
}
