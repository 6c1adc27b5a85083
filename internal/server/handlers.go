package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/agora-protocol/dashboard/internal/calculation"
	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/agora-protocol/dashboard/internal/exporter"
	"github.com/agora-protocol/dashboard/internal/output"
)

// Dashboard serves one immutable snapshot. Views are rebuilt per request so countdowns stay current.
type Dashboard struct {
	snap   *domain.Dashboard
	engine *calculation.ViewEngine
	now    func() time.Time
	log    calculation.Logger
}

func NewDashboard(snap *domain.Dashboard, opts Options) Dashboard {
	now := opts.Now
	if now == nil {
		now = calculation.Now
	}
	engine := calculation.NewViewEngine()
	engine.SetLogger(opts.Logger)
	return Dashboard{snap: snap, engine: engine, now: now, log: nopIfNil(opts.Logger)}
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (d Dashboard) view(c *gin.Context) (*domain.DashboardView, bool) {
	v, err := d.engine.BuildView(d.snap, d.now())
	if err != nil {
		d.log.Errorf("request %s: build view: %v", c.GetString(requestIDKey), err)
		c.JSON(http.StatusInternalServerError, gin.H{"err": err.Error()})
		return nil, false
	}
	exporter.IncViewsBuilt()
	return v, true
}

func (d Dashboard) Snapshot(c *gin.Context) {
	if d.snap == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"err": calculation.ErrNilDashboard.Error()})
		return
	}
	c.JSON(http.StatusOK, d.snap)
}

func (d Dashboard) View(c *gin.Context) {
	v, ok := d.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, v)
}

func (d Dashboard) Proposals(c *gin.Context) {
	v, ok := d.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"total_count":   v.Snapshot.Proposals.TotalCount,
		"active_count":  v.Snapshot.Proposals.ActiveCount,
		"proposals":     v.Proposals,
		"dao_proposals": v.DAO,
	})
}

func (d Dashboard) Proposal(c *gin.Context) {
	v, ok := d.view(c)
	if !ok {
		return
	}
	id := c.Param("id")
	for _, p := range v.Proposals {
		if p.ID == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"err": "proposal not found"})
}

func (d Dashboard) DAOProposal(c *gin.Context) {
	v, ok := d.view(c)
	if !ok {
		return
	}
	id := c.Param("id")
	for _, p := range v.DAO {
		if p.ID == id {
			c.JSON(http.StatusOK, p)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"err": "dao proposal not found"})
}

func (d Dashboard) Sanctions(c *gin.Context) {
	v, ok := d.view(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"active_count":     v.Snapshot.Sanctions.ActiveCount,
		"historical_count": v.Snapshot.Sanctions.HistoricalCount,
		"active":           v.Sanctions,
		"historical":       v.Historical,
	})
}

func (d Dashboard) Report(c *gin.Context) {
	format := c.Param("format")
	if output.GetFormatterByName(format) == nil {
		c.JSON(http.StatusBadRequest, gin.H{"err": "unsupported format", "formats": output.AvailableFormatterNames()})
		return
	}
	v, ok := d.view(c)
	if !ok {
		return
	}
	b, f, err := output.Render(v, format)
	if err != nil {
		exporter.IncRenderError()
		status := http.StatusInternalServerError
		if errors.Is(err, output.ErrUnsupportedFormat) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"err": err.Error()})
		return
	}
	exporter.IncReportRendered(f.Name())
	ct, _ := output.ContentTypeOf(f)
	c.Data(http.StatusOK, ct, b)
}
