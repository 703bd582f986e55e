package sysinfo

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archdash/backend/internal/shared/types"
)

func TestProbeRun(t *testing.T) {
	payload, err := json.Marshal(sampleInfo())
	require.NoError(t, err)

	p := NewProbe("printf %s '"+string(payload)+"'", nil)
	raw, err := p.Run(context.Background())
	require.NoError(t, err)

	var info types.SystemInfo
	require.NoError(t, json.Unmarshal(raw, &info))
	assert.Equal(t, "archbox", info.System.Hostname)
}

func TestProbeRunPreservesOutputVerbatim(t *testing.T) {
	// Key order and whitespace of the probe output must survive the relay.
	body := `{"system":{"hostname":"archbox"},  "users":["alice"]}`
	p := NewProbe("printf %s '"+body+"'", nil)

	raw, err := p.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, body, string(raw))
}

func TestProbeCommandFailure(t *testing.T) {
	p := NewProbe("exit 3", nil)

	_, err := p.Run(context.Background())
	assert.Error(t, err)
}

func TestProbeInvalidJSON(t *testing.T) {
	p := NewProbe("echo not-json", nil)

	_, err := p.Run(context.Background())
	assert.Error(t, err)
}

func TestProbeEmptyCommand(t *testing.T) {
	p := NewProbe("   ", nil)

	_, err := p.Run(context.Background())
	assert.Error(t, err)
}

func TestProbeHonorsContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	p := NewProbe("sleep 5", nil)
	start := time.Now()
	_, err := p.Run(ctx)

	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}
