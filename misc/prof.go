package misc

import (
	"time"
)

// ProfTimer logs how long a block took.
//
//	{
//		timer := NewProfTimer("some function")
//		defer timer.Report()
//		// reports some function took 10ms
//	}
type ProfTimer struct {
	Start time.Time
	Name  string
}

func NewProfTimer(name string) ProfTimer {
	return ProfTimer{
		Start: time.Now(),
		Name:  name,
	}
}

func (p ProfTimer) Elapsed() time.Duration {
	return time.Since(p.Start)
}

func (p ProfTimer) Report() {
	InfoLogger.Printf("\"%v\" took %v\n", p.Name, p.Elapsed())
}
