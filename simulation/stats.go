package simulation

import "fmt"

// EventsPerSecond is the run's throughput figure, the one number every
// mode emits (spec.md §6).
func (m *Manager) EventsPerSecond() float64 {
	d := m.simulationEnd.Sub(m.simulationStart).Seconds()
	if d <= 0 {
		return 0
	}
	return float64(m.eventsCount) / d
}

// PrintStats emits the full diagnostic block: build overhead, simulation
// duration, events/sec, the committed trace, and per-transition firing
// counts (spec.md §6 full mode).
func (m *Manager) PrintStats() {
	fmt.Printf("build time: %s\n", m.buildDuration)
	fmt.Printf("simulation time: %s\n", m.simulationEnd.Sub(m.simulationStart))
	fmt.Printf("events: %d\n", m.eventsCount)
	fmt.Printf("events/sec: %.2f\n", m.EventsPerSecond())
	fmt.Printf("trace: %v\n", m.trace)
	for _, name := range m.net.Transitions() {
		fmt.Printf("  %s: %d\n", name, m.eventsDistribution[name])
	}
}

// PrintStatsForBenchmarks emits only the events/sec line (spec.md §6
// is_benchmarking mode).
func (m *Manager) PrintStatsForBenchmarks() {
	fmt.Printf("%.2f\n", m.EventsPerSecond())
}
