package report

import "github.com/GriffinCanCode/pointproc/internal/events"

// StreamDump is the encodable form of a whole stream.
type StreamDump struct {
	Generator *GeneratorParams `json:"generator,omitempty" yaml:"generator,omitempty" toml:"generator,omitempty"`
	Horizon   float64          `json:"horizon" yaml:"horizon" toml:"horizon"`
	Processes int              `json:"processes" yaml:"processes" toml:"processes"`
	Events    []events.Event   `json:"events" yaml:"events" toml:"events"`
}

// Dump captures s for encoding. gen may be nil when the origin is unknown.
func Dump(s *events.Stream, gen *GeneratorParams) StreamDump {
	return StreamDump{
		Generator: gen,
		Horizon:   s.Horizon(),
		Processes: s.NumProcesses(),
		Events:    s.Events(),
	}
}

// Stream rebuilds a stream from a dump.
func (d StreamDump) Stream() (*events.Stream, error) {
	return events.FromEvents(d.Events, d.Horizon, events.WithNumProcesses(d.Processes))
}
