package complyboard

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/complyboard/complyboard/analysis"
	"github.com/complyboard/complyboard/dashboard"
	"github.com/complyboard/complyboard/dashboard/pages"
	"github.com/complyboard/complyboard/log"
	"github.com/complyboard/complyboard/model"
	"github.com/complyboard/complyboard/report"
)

const sidebarCookie = "sidebar"

// RegisterRoutes registers HTTP routes on the given gin.Engine
// Routes: /dashboard, /dashboard/analytics, /dashboard/reviews,
// /dashboard/standards, /dashboard/contracts/:contractID and its
// attestation/evidence/export endpoints, /dashboard/health
func (cb *Complyboard) RegisterRoutes(router *gin.Engine) {
	router.GET("/dashboard", cb.handleAnalytics)
	router.GET("/dashboard/analytics", cb.handleAnalytics)
	router.GET("/dashboard/reviews", cb.handleReviews)
	router.GET("/dashboard/standards", cb.handleStandards)
	router.GET("/dashboard/contracts/:contractID", cb.handleContractDetail)
	router.GET("/dashboard/contracts/:contractID/evidence/:termID/:subIndex", cb.handleEvidence)
	router.GET("/dashboard/contracts/:contractID/export", cb.handleExport)
	router.POST("/dashboard/contracts/:contractID/attestations/approve", cb.handleApprove)
	router.POST("/dashboard/contracts/:contractID/attestations/override", cb.handleOverride)
	router.POST("/dashboard/contracts/:contractID/attest", cb.handleAttest)
	router.POST("/dashboard/sidebar/toggle", cb.handleSidebarToggle)
	router.GET("/dashboard/health", cb.handleHealth)
}

// sidebarCollapsed reads the sidebar state cookie; the sidebar starts
// expanded when no cookie is set
func sidebarCollapsed(c *gin.Context) bool {
	state, err := c.Cookie(sidebarCookie)
	return err == nil && state == "collapsed"
}

func (cb *Complyboard) handleAnalytics(c *gin.Context) {
	html, err := pages.RenderAnalytics(cb.handler, sidebarCollapsed(c))
	if err != nil {
		log.Log.Errorf("Failed to render analytics: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render analytics"})
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}

func (cb *Complyboard) handleReviews(c *gin.Context) {
	filter := dashboard.ContractFilter{
		Status:   model.ContractStatus(c.Query("status")),
		Risk:     model.RiskLevel(c.Query("risk")),
		Reviewer: c.Query("reviewer"),
		Band:     model.MatchingBand(c.Query("band")),
		Search:   c.Query("search"),
	}
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	html, err := pages.RenderReviews(cb.handler, sidebarCollapsed(c), filter, page)
	if err != nil {
		log.Log.Errorf("Failed to render reviews: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render reviews"})
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}

func (cb *Complyboard) handleStandards(c *gin.Context) {
	html, err := pages.RenderStandards(cb.handler, sidebarCollapsed(c))
	if err != nil {
		log.Log.Errorf("Failed to render standards: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to render standards"})
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}

func (cb *Complyboard) handleContractDetail(c *gin.Context) {
	contractID := c.Param("contractID")

	html, err := pages.RenderContractDetail(cb.handler, sidebarCollapsed(c), contractID)
	if err != nil {
		log.Log.Warnf("Failed to render contract %s: %v", contractID, err)
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("contract %s not found", contractID)})
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}

func (cb *Complyboard) handleEvidence(c *gin.Context) {
	contractID := c.Param("contractID")
	termID := c.Param("termID")
	subIndex, err := strconv.Atoi(c.Param("subIndex"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subpoint index"})
		return
	}
	source, _ := strconv.Atoi(c.DefaultQuery("source", "0"))

	html, err := pages.RenderEvidence(cb.handler, sidebarCollapsed(c), contractID, termID, subIndex, source)
	if err != nil {
		log.Log.Warnf("Failed to render evidence for contract %s term %s: %v", contractID, termID, err)
		c.JSON(http.StatusNotFound, gin.H{"error": "evidence not found"})
		return
	}
	c.Header("Content-Type", "text/html; charset=utf-8")
	c.String(http.StatusOK, html)
}

// handleExport serves the review report as a JSON or Markdown download.
// An AI executive summary is attached when the summarizer is configured.
func (cb *Complyboard) handleExport(c *gin.Context) {
	contractID := c.Param("contractID")

	contract, err := cb.store.GetContract(contractID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("contract %s not found", contractID)})
		return
	}
	terms, err := cb.repo.Terms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load compliance terms"})
		return
	}
	stored, err := cb.store.ListAttestations(contractID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list attestations"})
		return
	}
	attestations := make([]model.Attestation, 0, len(stored))
	for _, a := range stored {
		attestations = append(attestations, *a)
	}

	r, err := report.NewReviewReport(contract, terms, attestations)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}

	if cb.llm != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		summary, err := analysis.GenerateReviewSummary(ctx, cb.llm, contract, terms, analysis.SummaryConfig{
			Model: cb.config.AI.Model,
		})
		if err != nil {
			log.Log.Warnf("AI summary failed for contract %s: %v", contractID, err)
		} else {
			r.SetSummary(summary)
		}
	}

	if c.Query("format") == "markdown" {
		c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="complyboard-review-%s.md"`, contractID))
		c.Data(http.StatusOK, "text/markdown; charset=utf-8", []byte(r.Markdown()))
		return
	}

	data, err := r.JSON()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to marshal report"})
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="complyboard-review-%s.json"`, contractID))
	c.Data(http.StatusOK, "application/json", data)
}

func (cb *Complyboard) handleApprove(c *gin.Context) {
	cb.putAttestation(c, true)
}

func (cb *Complyboard) handleOverride(c *gin.Context) {
	cb.putAttestation(c, false)
}

func (cb *Complyboard) putAttestation(c *gin.Context, agreed bool) {
	contractID := c.Param("contractID")
	termID := c.PostForm("term_id")
	subIndex, err := strconv.Atoi(c.PostForm("sub_point_index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid subpoint index"})
		return
	}

	if _, err := cb.store.GetContract(contractID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("contract %s not found", contractID)})
		return
	}

	att := &model.Attestation{
		ID:            uuid.NewString(),
		ContractID:    contractID,
		TermID:        termID,
		SubPointIndex: subIndex,
		Agreed:        agreed,
		CreatedAt:     time.Now(),
	}
	if !agreed {
		value := c.PostForm("value")
		switch value {
		case model.OverrideSupported, model.OverridePartiallySupported, model.OverrideNotSupported:
		default:
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid override value: %q", value)})
			return
		}
		att.OverriddenValue = value
		att.Reason = c.PostForm("reason")
	}

	if err := cb.store.PutAttestation(att); err != nil {
		log.Log.Errorf("Failed to store attestation for contract %s: %v", contractID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store attestation"})
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard/contracts/"+contractID)
}

// handleAttest signs off the whole review. Every subpoint must carry an
// attestation first.
func (cb *Complyboard) handleAttest(c *gin.Context) {
	contractID := c.Param("contractID")

	contract, err := cb.store.GetContract(contractID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": fmt.Sprintf("contract %s not found", contractID)})
		return
	}
	terms, err := cb.repo.Terms()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load compliance terms"})
		return
	}
	stored, err := cb.store.ListAttestations(contractID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list attestations"})
		return
	}
	attestations := make([]model.Attestation, 0, len(stored))
	for _, a := range stored {
		attestations = append(attestations, *a)
	}

	progress := model.ComputeAttestationProgress(terms, attestations)
	if !progress.CanAttest {
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("review incomplete: %d of %d points reviewed", progress.ReviewedCount, progress.TotalPoints),
		})
		return
	}

	contract.AttestedAt = time.Now()
	if err := cb.store.PutContract(contract); err != nil {
		log.Log.Errorf("Failed to attest contract %s: %v", contractID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to attest review"})
		return
	}
	log.Log.Infof("Contract %s attested", contractID)

	c.Redirect(http.StatusSeeOther, "/dashboard/contracts/"+contractID)
}

// handleSidebarToggle flips the sidebar state cookie. The page scripts call
// this endpoint and reload, so the next render picks up the new width.
func (cb *Complyboard) handleSidebarToggle(c *gin.Context) {
	state := "collapsed"
	if sidebarCollapsed(c) {
		state = "expanded"
	}
	c.SetCookie(sidebarCookie, state, 0, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"sidebar": state})
}

func (cb *Complyboard) handleHealth(c *gin.Context) {
	contracts, err := cb.store.ListContracts()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"contracts": len(contracts),
		"version":   Version(),
	})
}
