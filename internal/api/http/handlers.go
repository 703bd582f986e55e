package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/archdash/backend/internal/api/ws"
	"github.com/archdash/backend/internal/domain/catalog"
	"github.com/archdash/backend/internal/domain/script"
	"github.com/archdash/backend/internal/domain/sysinfo"
	"github.com/archdash/backend/internal/infrastructure/monitoring"
	"github.com/archdash/backend/internal/shared/types"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	store   *catalog.Store
	probe   *sysinfo.Probe
	gateway *sysinfo.Gateway
	metrics *monitoring.Metrics
	events  *ws.Hub
}

// NewHandlers creates a new handler set.
func NewHandlers(
	store *catalog.Store,
	probe *sysinfo.Probe,
	gateway *sysinfo.Gateway,
	metrics *monitoring.Metrics,
	events *ws.Hub,
) *Handlers {
	return &Handlers{
		store:   store,
		probe:   probe,
		gateway: gateway,
		metrics: metrics,
		events:  events,
	}
}

// Root handles the service banner.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "online",
		"service": "ArchDash Backend",
		"version": "0.3.0",
	})
}

// Health handles detailed health check.
func (h *Handlers) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"catalog": h.store.Stats(),
	})
}

// ListEntries lists catalog entries with optional filters and sorting.
func (h *Handlers) ListEntries(c *gin.Context) {
	filter := types.EntryFilter{
		Category: types.CategoryType(c.Query("category")),
		Search:   c.Query("search"),
		Status:   types.InstallStatus(c.Query("status")),
	}
	sortBy := types.EntrySort{
		Field:     types.SortField(c.Query("sort")),
		Direction: types.SortDirection(c.Query("direction")),
	}

	entries := h.store.Entries(filter, sortBy)

	c.JSON(http.StatusOK, gin.H{
		"entries": entries,
		"count":   len(entries),
	})
}

// CreateEntry adds a new catalog entry.
func (h *Handlers) CreateEntry(c *gin.Context) {
	var input types.EntryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.store.AddEntry(input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.afterCatalogChange(ws.EventEntryAdded, entry)
	c.JSON(http.StatusCreated, entry)
}

// UpdateEntry applies a partial update to an entry.
func (h *Handlers) UpdateEntry(c *gin.Context) {
	entryID := c.Param("id")

	var patch types.EntryPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.store.UpdateEntry(entryID, patch)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "entry not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	h.afterCatalogChange(ws.EventEntryUpdated, entry)
	c.JSON(http.StatusOK, entry)
}

// DeleteEntry removes an entry. Deleting an absent entry is a no-op.
func (h *Handlers) DeleteEntry(c *gin.Context) {
	entryID := c.Param("id")
	removed := h.store.RemoveEntry(entryID)

	if removed {
		h.afterCatalogChange(ws.EventEntryRemoved, gin.H{"id": entryID})
	}
	c.JSON(http.StatusOK, gin.H{
		"removed": removed,
		"id":      entryID,
	})
}

// ListCategories returns the fixed category definitions.
func (h *Handlers) ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": catalog.Categories(),
	})
}

// CatalogStats returns per-category aggregate counts.
func (h *Handlers) CatalogStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.Stats())
}

// ListUsers lists tracked users.
func (h *Handlers) ListUsers(c *gin.Context) {
	users := h.store.Users()
	c.JSON(http.StatusOK, gin.H{
		"users": users,
		"count": len(users),
	})
}

// CreateUser adds a tracked user. Duplicate usernames are rejected.
func (h *Handlers) CreateUser(c *gin.Context) {
	var user types.User
	if err := c.ShouldBindJSON(&user); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.store.AddUser(user)
	if err != nil {
		if errors.Is(err, catalog.ErrDuplicateUser) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.afterCatalogChange(ws.EventUserAdded, created)
	c.JSON(http.StatusCreated, created)
}

// DeleteUser removes a tracked user by username.
func (h *Handlers) DeleteUser(c *gin.Context) {
	username := c.Param("username")
	removed := h.store.RemoveUser(username)

	if removed {
		h.afterCatalogChange(ws.EventUserRemoved, gin.H{"username": username})
	}
	c.JSON(http.StatusOK, gin.H{
		"removed":  removed,
		"username": username,
	})
}

// GenerateScript renders an install script from the selected categories.
// An empty selection includes every category.
func (h *Handlers) GenerateScript(c *gin.Context) {
	var req struct {
		Categories []types.CategoryType `json:"categories"`
	}
	// The category subset is optional; a missing body means all categories.
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entries := h.store.Entries(types.EntryFilter{}, types.EntrySort{})
	rendered := script.Generate(entries, req.Categories)

	if h.metrics != nil {
		h.metrics.ScriptsGenerated.Inc()
	}

	c.JSON(http.StatusOK, gin.H{
		"script":   rendered,
		"filename": script.DefaultFilename,
	})
}

// SystemInfo is the probe relay: it runs the host system-probe command and
// returns its JSON verbatim, or 500 with an error body on failure.
func (h *Handlers) SystemInfo(c *gin.Context) {
	start := time.Now()
	raw, err := h.probe.Run(c.Request.Context())
	if err != nil {
		if h.metrics != nil {
			h.metrics.RecordProbeRun("error", time.Since(start))
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get system information"})
		return
	}

	if h.metrics != nil {
		h.metrics.RecordProbeRun("ok", time.Since(start))
	}
	c.Data(http.StatusOK, "application/json", raw)
}

// SystemInfoCached serves the gateway view of the snapshot: it always
// responds 200, substituting the all-"Unknown" fallback when the live
// fetch fails.
func (h *Handlers) SystemInfoCached(c *gin.Context) {
	info := h.gateway.Fetch(c.Request.Context())
	c.JSON(http.StatusOK, info)
}

// afterCatalogChange publishes a change event and refreshes catalog gauges.
func (h *Handlers) afterCatalogChange(event ws.EventType, payload interface{}) {
	if h.events != nil {
		h.events.Broadcast(event, payload)
	}
	if h.metrics != nil {
		stats := h.store.Stats()
		h.metrics.SetCatalogSize(stats.TotalEntries, stats.TotalUsers)
	}
}
