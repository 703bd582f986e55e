package sysinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	"go.uber.org/zap"

	"github.com/archdash/backend/internal/shared/types"
)

// Probe runs the host system-probe command and relays its JSON output.
type Probe struct {
	command string
	logger  *zap.Logger
}

// NewProbe creates a probe for the given shell command.
func NewProbe(command string, logger *zap.Logger) *Probe {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Probe{
		command: command,
		logger:  logger,
	}
}

// Run executes the probe command and returns its stdout verbatim after
// validating that it parses as a SystemInfo document. The command runs
// under the caller's context, so a cancelled request kills the probe.
func (p *Probe) Run(ctx context.Context) (json.RawMessage, error) {
	if strings.TrimSpace(p.command) == "" {
		return nil, fmt.Errorf("no probe command configured")
	}

	cmd := exec.CommandContext(ctx, "/bin/sh", "-c", p.command)
	output, err := cmd.Output()
	if err != nil {
		p.logger.Error("System probe failed", zap.String("command", p.command), zap.Error(err))
		return nil, fmt.Errorf("probe command failed: %w", err)
	}

	var info types.SystemInfo
	if err := json.Unmarshal(output, &info); err != nil {
		p.logger.Error("System probe produced invalid JSON", zap.Error(err))
		return nil, fmt.Errorf("probe output is not valid system info: %w", err)
	}

	return json.RawMessage(output), nil
}
