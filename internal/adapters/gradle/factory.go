package gradle

import (
	"go.trai.ch/jute/internal/adapters/telemetry"
	"go.trai.ch/jute/internal/core/ports"
)

var _ ports.HarnessFactory = (*Factory)(nil)

// Factory creates harnesses sharing one executor, classpath resolver and telemetry.
type Factory struct {
	executor  ports.Executor
	classpath ports.ClasspathResolver
	telemetry ports.Telemetry
}

// NewFactory creates a new Factory. A nil telemetry records nothing.
func NewFactory(executor ports.Executor, classpath ports.ClasspathResolver, tel ports.Telemetry) *Factory {
	if tel == nil {
		tel = telemetry.NewNoOp()
	}
	return &Factory{
		executor:  executor,
		classpath: classpath,
		telemetry: tel,
	}
}

// NewHarness creates a harness configured with opts.
func (f *Factory) NewHarness(opts ports.HarnessOptions) ports.BuildInvoker {
	return NewHarness(f.executor, f.classpath, f.telemetry, opts)
}
