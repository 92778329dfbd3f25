package event

// Sink consumes the score events drained after each tick
// Sinks observe score values and must not mutate simulation state;
// emission happens whether or not any sink is wired.
type Sink interface {
	Notify(events []ScoreEvent)
}
