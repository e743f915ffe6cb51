package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"aaru/internal/calendar"
	"aaru/internal/model"
	"aaru/internal/service"
)

// TrackerHandler exposes the tracker core over REST.
type TrackerHandler struct {
	tracker *service.Tracker
}

func NewTrackerHandler(tracker *service.Tracker) *TrackerHandler {
	return &TrackerHandler{tracker: tracker}
}

// requireConfirm gates destructive operations behind an explicit
// confirm=true; declining leaves all state unchanged.
func requireConfirm(c *gin.Context) bool {
	if c.Query("confirm") == "true" {
		return true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required: pass confirm=true"})
	return false
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTitleRequired), errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

// ---- pillars ----

// ListPillars handles GET /pillars.
func (h *TrackerHandler) ListPillars(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"pillars": h.tracker.Pillars()})
}

// GetPillar handles GET /pillars/:id. Orphaned references make absence a
// normal case, answered with 404 rather than assumed presence.
func (h *TrackerHandler) GetPillar(c *gin.Context) {
	p, ok := h.tracker.Pillar(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "pillar not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// CreatePillar handles POST /pillars.
func (h *TrackerHandler) CreatePillar(c *gin.Context) {
	var in service.CreatePillarInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	p, err := h.tracker.CreatePillar(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

// DeletePillar handles DELETE /pillars/:id?confirm=true. Does not cascade:
// goals keep their reference and become orphaned.
func (h *TrackerHandler) DeletePillar(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	if err := h.tracker.DeletePillar(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ---- goals ----

// ListGoals handles GET /goals, optionally filtered by pillar_id, in
// timeline (start date) order.
func (h *TrackerHandler) ListGoals(c *gin.Context) {
	if pillarID := c.Query("pillar_id"); pillarID != "" {
		c.JSON(http.StatusOK, gin.H{"goals": h.tracker.GoalsByPillar(pillarID)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"goals": h.tracker.Goals()})
}

// CreateGoal handles POST /goals.
func (h *TrackerHandler) CreateGoal(c *gin.Context) {
	var in service.CreateGoalInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	g, err := h.tracker.CreateGoal(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, g)
}

// DeleteGoal handles DELETE /goals/:id?confirm=true and cascades to the
// goal's habits.
func (h *TrackerHandler) DeleteGoal(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	if err := h.tracker.DeleteGoal(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// GetGrowth handles GET /goals/:id/growth.
func (h *TrackerHandler) GetGrowth(c *gin.Context) {
	goalID := c.Param("id")
	score, stage := h.tracker.Growth(goalID)
	c.JSON(http.StatusOK, gin.H{
		"goal_id": goalID,
		"growth":  score,
		"stage":   stage,
	})
}

// ---- habits ----

// ListHabits handles GET /habits, optionally filtered by goal_id.
func (h *TrackerHandler) ListHabits(c *gin.Context) {
	if goalID := c.Query("goal_id"); goalID != "" {
		c.JSON(http.StatusOK, gin.H{"habits": h.tracker.HabitsByGoal(goalID)})
		return
	}
	c.JSON(http.StatusOK, gin.H{"habits": h.tracker.Habits()})
}

// CreateHabit handles POST /habits.
func (h *TrackerHandler) CreateHabit(c *gin.Context) {
	var in service.CreateHabitInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	habit, err := h.tracker.CreateHabit(c.Request.Context(), in)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, habit)
}

// DeleteHabit handles DELETE /habits/:id?confirm=true.
func (h *TrackerHandler) DeleteHabit(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	if err := h.tracker.DeleteHabit(c.Request.Context(), c.Param("id")); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}

// ToggleHabit handles POST /habits/:id/toggle. The date defaults to today
// when the body omits it; an unknown habit id is a no-op, not an error.
func (h *TrackerHandler) ToggleHabit(c *gin.Context) {
	var req struct {
		Date string `json:"date"`
	}
	// An empty body is fine; it means toggle today.
	_ = c.ShouldBindJSON(&req)

	completed, found := h.tracker.ToggleHabit(c.Request.Context(), c.Param("id"), req.Date)
	c.JSON(http.StatusOK, gin.H{
		"found":     found,
		"completed": completed,
	})
}

// ---- settings ----

// GetSettings handles GET /settings.
func (h *TrackerHandler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.tracker.Settings())
}

// UpdateSettings handles PUT /settings.
func (h *TrackerHandler) UpdateSettings(c *gin.Context) {
	var cfg model.Settings
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	if err := h.tracker.UpdateSettings(c.Request.Context(), cfg); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// ---- calendar ----

// GetCalendar handles GET /calendar?view=&anchor=&offset=. The anchor
// defaults to today; offset navigates by view-sized steps before
// projecting.
func (h *TrackerHandler) GetCalendar(c *gin.Context) {
	view, err := calendar.ParseView(c.DefaultQuery("view", string(calendar.ViewMonth)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	anchor := time.Now()
	if raw := c.Query("anchor"); raw != "" {
		anchor, err = model.ParseDate(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "anchor must be YYYY-MM-DD"})
			return
		}
	}

	var offset int
	if raw := c.Query("offset"); raw != "" {
		offset, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "offset must be an integer"})
			return
		}
	}
	anchor = calendar.ChangeDate(view, anchor, offset)

	c.JSON(http.StatusOK, gin.H{
		"view":   view,
		"anchor": model.FormatDate(anchor),
		"cells":  h.tracker.Calendar(view, anchor),
	})
}

// ---- reset ----

// Reset handles POST /reset?confirm=true: wipes every snapshot and
// restores the seed. Irreversible.
func (h *TrackerHandler) Reset(c *gin.Context) {
	if !requireConfirm(c) {
		return
	}
	h.tracker.Reset(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}
