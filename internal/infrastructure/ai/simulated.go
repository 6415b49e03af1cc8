package ai

import (
	"context"
	"time"
)

// SimulatedProvider stands in for a real model backend. It sleeps a fixed
// latency representing inference time and returns a canned completion.
type SimulatedProvider struct {
	name    string
	latency time.Duration
	output  string
}

func NewSimulatedProvider(name string, latency time.Duration, output string) *SimulatedProvider {
	return &SimulatedProvider{
		name:    name,
		latency: latency,
		output:  output,
	}
}

func (p *SimulatedProvider) Name() string {
	return p.name
}

func (p *SimulatedProvider) Generate(ctx context.Context, prompt string) (string, error) {
	timer := time.NewTimer(p.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return p.output, nil
	case <-ctx.Done():
		return "", ctx.Err()
	}
}
