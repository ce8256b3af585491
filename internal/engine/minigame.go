package engine

import (
	"strings"
	"time"
)

// ReflexPenalty is the fine for crossing on red.
const ReflexPenalty = 150.0

const (
	reflexMinDelay  = 1000 * time.Millisecond
	reflexDelaySpan = 2000
	mouseMinCount   = 4
	mouseCountSpan  = 2
)

// ReflexOutcome is the synthesized result of the traffic-light minigame.
type ReflexOutcome struct {
	Success bool
	Lines   []string
}

func (o ReflexOutcome) Message() string {
	return strings.Join(o.Lines, "\n")
}

// ResolveReflex settles the light minigame. Crossing on green costs nothing
// and only saves; crossing on red applies ReflexPenalty.
func (e *Engine) ResolveReflex(green bool) (ReflexOutcome, error) {
	if e.state != StateRunning {
		return ReflexOutcome{}, ErrNotRunning
	}
	header := []string{"Zaczekaj na zielone światło", ""}
	if green {
		e.SaveGame()
		return ReflexOutcome{
			Success: true,
			Lines: append(header,
				"SUKCES!",
				"Przeszedłeś bezpiecznie na zielonym świetle.",
				"",
				"(Brak negatywnych skutków)",
			),
		}, nil
	}
	if err := e.ApplyMandate(ReflexPenalty); err != nil {
		return ReflexOutcome{}, err
	}
	return ReflexOutcome{
		Lines: append(header,
			"PORAŻKA!",
			"Przeszedłeś na czerwonym świetle.",
			"",
			"- Koszt: 150 PLN (Mandat)",
		),
	}, nil
}

// ReflexDelay is how long the light stays red: uniform in [1s, 3s).
func ReflexDelay(r Rand) time.Duration {
	return reflexMinDelay + time.Duration(r.IntN(reflexDelaySpan))*time.Millisecond
}

// MouseCount is the number of mice to catch: 4 or 5.
func MouseCount(r Rand) int {
	return mouseMinCount + r.IntN(mouseCountSpan)
}
