package sysinfo

import (
	"context"
	"encoding/json"

	"github.com/go-resty/resty/v2"
	"github.com/hashicorp/go-retryablehttp"
	"go.uber.org/zap"

	"github.com/archdash/backend/internal/shared/types"
)

// infoPath is the snapshot endpoint relative to the gateway base URL.
const infoPath = "/api/system-info"

// Gateway fetches SystemInfo snapshots over HTTP. Fetch always succeeds
// from the caller's perspective: failures degrade to the fallback
// snapshot instead of propagating.
type Gateway struct {
	client     *resty.Client
	logger     *zap.Logger
	onFallback func()
}

// NewGateway creates a gateway for the given base URL.
func NewGateway(baseURL string, logger *zap.Logger) *Gateway {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Shared transport from retryablehttp, but with retries disabled: the
	// snapshot contract is one request per call, failure falls back.
	transportClient := retryablehttp.NewClient()
	transportClient.RetryMax = 0
	transportClient.Logger = nil

	client := resty.New().
		SetBaseURL(baseURL).
		SetTransport(transportClient.HTTPClient.Transport).
		SetHeader("User-Agent", "ArchDash-Gateway/1.0")

	return &Gateway{
		client: client,
		logger: logger,
	}
}

// WithFallbackHook registers a callback invoked each time a fetch degrades
// to the fallback snapshot. Used for metrics.
func (g *Gateway) WithFallbackHook(hook func()) *Gateway {
	g.onFallback = hook
	return g
}

func (g *Gateway) fallback() types.SystemInfo {
	if g.onFallback != nil {
		g.onFallback()
	}
	return types.FallbackSystemInfo()
}

// Fetch retrieves the current snapshot. Every call issues a fresh request;
// on any failure (network, non-2xx, malformed body) the error is logged
// and the fully-populated fallback snapshot is returned instead.
func (g *Gateway) Fetch(ctx context.Context) types.SystemInfo {
	resp, err := g.client.R().SetContext(ctx).Get(infoPath)
	if err != nil {
		g.logger.Error("System info fetch failed", zap.Error(err))
		return g.fallback()
	}
	if !resp.IsSuccess() {
		g.logger.Error("System info fetch returned non-success status",
			zap.Int("status", resp.StatusCode()),
		)
		return g.fallback()
	}

	var info types.SystemInfo
	if err := json.Unmarshal(resp.Body(), &info); err != nil {
		g.logger.Error("System info response is not valid JSON", zap.Error(err))
		return g.fallback()
	}

	normalize(&info)
	return info
}

// normalize replaces absent fields with their fallback values so callers
// always see a fully-populated snapshot, even from a sparse body.
func normalize(info *types.SystemInfo) {
	for _, field := range []*string{
		&info.System.Hostname, &info.System.BaseInstall, &info.System.Kernel,
		&info.System.Bootloader, &info.System.LoginManager, &info.System.Font,
		&info.System.Theme, &info.System.IconTheme, &info.System.CursorTheme,
		&info.Drivers.Graphics, &info.Drivers.Audio,
	} {
		if *field == "" {
			*field = "Unknown"
		}
	}

	for _, list := range []*[]string{
		&info.Users,
		&info.Packages.CoreOsUtilities, &info.Packages.ExtraUtilities,
		&info.Packages.WebBrowsers, &info.Packages.TextEditors,
		&info.Packages.Launchers, &info.Packages.Applications,
		&info.Themes.Fonts, &info.Themes.Themes,
		&info.Themes.IconThemes, &info.Themes.CursorThemes,
	} {
		if *list == nil {
			*list = []string{}
		}
	}
}
