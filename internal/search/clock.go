package search

import "time"

// Clock abstrai o relógio para tornar TTL e recência testáveis.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock é o relógio real do sistema.
var SystemClock Clock = systemClock{}
