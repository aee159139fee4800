package service

import (
	"context"
	"fmt"

	"cerebro-wallet/internal/core/ports"

	"github.com/rs/zerolog"
)

// StubBiometricProvider implements ports.BiometricProvider without any
// hardware: capture yields an opaque payload and verification always
// succeeds at the configured level. Only the validation endpoint talks to
// this provider; the guard reads freshness tokens instead.
type StubBiometricProvider struct {
	available bool
	level     int
	log       zerolog.Logger
}

// NewStubBiometricProvider creates a stub provider that verifies at level.
func NewStubBiometricProvider(available bool, level int, log zerolog.Logger) *StubBiometricProvider {
	return &StubBiometricProvider{available: available, level: level, log: log}
}

func (p *StubBiometricProvider) IsAvailable(kind string) bool {
	return p.available
}

func (p *StubBiometricProvider) Capture(_ context.Context, kind string) ([]byte, error) {
	if !p.available {
		return nil, fmt.Errorf("biometric hardware %q unavailable", kind)
	}
	return []byte("stub:" + kind), nil
}

func (p *StubBiometricProvider) Verify(_ context.Context, payload []byte) (ports.BiometricVerification, error) {
	if len(payload) == 0 {
		return ports.BiometricVerification{Success: false, Reason: "empty payload"}, nil
	}
	p.log.Debug().Int("level", p.level).Msg("stub biometric verification")
	return ports.BiometricVerification{Success: true, Level: p.level}, nil
}
