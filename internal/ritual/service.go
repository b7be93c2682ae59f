package ritual

import (
	"context"
	"fmt"
	"time"

	"github.com/sablemoor/RitualBot_Go/internal/cooldown"
	"github.com/sablemoor/RitualBot_Go/internal/domain"
	"github.com/sablemoor/RitualBot_Go/internal/logger"
	"github.com/sablemoor/RitualBot_Go/internal/metrics"
	"github.com/sablemoor/RitualBot_Go/internal/ocr"
	"github.com/sablemoor/RitualBot_Go/internal/optimizer"
	"github.com/sablemoor/RitualBot_Go/internal/resolver"
)

// PlanRequest carries everything needed to plan an offering from a known
// candidate list. Exactly one of PolicyKey or TargetValue selects the
// threshold; PolicyKey wins when both are present.
type PlanRequest struct {
	UserID      string
	Items       []domain.CandidateItem
	PolicyKey   string
	TargetValue int
	MaxUnits    int
}

// ScanRequest plans an offering straight from a screenshot.
type ScanRequest struct {
	UserID      string
	ImageBase64 string
	PolicyKey   string
	TargetValue int
	MaxUnits    int
}

// ScanResult pairs the items recognized in the screenshot with the plan
// computed from them.
type ScanResult struct {
	Candidates []domain.CandidateItem `json:"candidates"`
	Plan       *domain.RitualPlan     `json:"plan"`
}

// Service orchestrates ritual planning: threshold resolution, per-user
// cooldown, and optionally the OCR/resolve pipeline in front of the
// optimizer.
type Service interface {
	PlanFromItems(ctx context.Context, req PlanRequest) (*domain.RitualPlan, error)
	PlanFromImage(ctx context.Context, req ScanRequest) (*ScanResult, error)
	ResolveImage(ctx context.Context, imageBase64 string) ([]domain.CandidateItem, error)
	ResolveText(ctx context.Context, text string) ([]domain.CandidateItem, error)
}

type service struct {
	planner         optimizer.Planner
	ocrClient       ocr.Client
	resolver        resolver.Resolver
	cooldowns       cooldown.Service
	defaultMaxUnits int
}

// NewService creates the orchestration service. ocrClient may be nil when no
// OCR backend is configured; image operations then fail with
// domain.ErrOCRUnavailable. defaultMaxUnits applies when a request omits its
// own unit cap; zero falls back to the planner's built-in default.
func NewService(planner optimizer.Planner, ocrClient ocr.Client, res resolver.Resolver, cooldowns cooldown.Service, defaultMaxUnits int) Service {
	return &service{
		planner:         planner,
		ocrClient:       ocrClient,
		resolver:        res,
		cooldowns:       cooldowns,
		defaultMaxUnits: defaultMaxUnits,
	}
}

// PlanFromItems computes the cheapest offering that clears the requested
// threshold. The call is cooldown-guarded per user; planning for an empty or
// infeasible inventory succeeds with an empty selection.
func (s *service) PlanFromItems(ctx context.Context, req PlanRequest) (*domain.RitualPlan, error) {
	target, err := s.resolveTarget(req.PolicyKey, req.TargetValue)
	if err != nil {
		return nil, err
	}

	maxUnits := req.MaxUnits
	if maxUnits <= 0 {
		maxUnits = s.defaultMaxUnits
	}

	var result *domain.SelectionResult
	err = s.cooldowns.EnforceCooldown(ctx, req.UserID, ActionPlan, func() error {
		start := time.Now()
		var planErr error
		result, planErr = s.planner.Plan(ctx, req.Items, target, maxUnits)
		metrics.OptimizerDuration.Observe(time.Since(start).Seconds())
		return planErr
	})
	if err != nil {
		return nil, err
	}

	metrics.PlansComputed.Inc()
	if result.Empty() {
		metrics.PlansInfeasible.Inc()
	}

	plan := &domain.RitualPlan{
		SelectionResult: *result,
		TargetValue:     target,
		RewardHours:     domain.RewardHoursFor(result.TotalBaseValue),
	}

	log := logger.FromContext(ctx)
	if result.Empty() {
		log.Info("no feasible offering",
			"user_id", req.UserID,
			"target_value", target,
			"candidates", len(req.Items))
	} else {
		log.Info("offering planned",
			"user_id", req.UserID,
			"target_value", target,
			"total_base_value", result.TotalBaseValue,
			"total_market_value", result.TotalMarketValue,
			"distinct_items", len(result.Selected))
	}

	return plan, nil
}

// PlanFromImage runs the full screenshot pipeline: OCR, item resolution,
// then PlanFromItems on whatever was recognized.
func (s *service) PlanFromImage(ctx context.Context, req ScanRequest) (*ScanResult, error) {
	candidates, err := s.ResolveImage(ctx, req.ImageBase64)
	if err != nil {
		return nil, err
	}

	plan, err := s.PlanFromItems(ctx, PlanRequest{
		UserID:      req.UserID,
		Items:       candidates,
		PolicyKey:   req.PolicyKey,
		TargetValue: req.TargetValue,
		MaxUnits:    req.MaxUnits,
	})
	if err != nil {
		return nil, err
	}

	return &ScanResult{Candidates: candidates, Plan: plan}, nil
}

// ResolveImage recognizes inventory items in a base64-encoded screenshot.
func (s *service) ResolveImage(ctx context.Context, imageBase64 string) ([]domain.CandidateItem, error) {
	if imageBase64 == "" {
		return nil, fmt.Errorf("%w: image is required", domain.ErrInvalidInput)
	}
	if s.ocrClient == nil {
		return nil, fmt.Errorf("%w: no OCR backend configured", domain.ErrOCRUnavailable)
	}

	transcript, err := s.ocrClient.ProcessImage(ctx, imageBase64)
	if err != nil {
		return nil, fmt.Errorf("failed to transcribe screenshot: %w", err)
	}

	return s.resolver.Resolve(ctx, transcript)
}

// ResolveText resolves items from raw transcript text, bypassing OCR.
func (s *service) ResolveText(ctx context.Context, text string) ([]domain.CandidateItem, error) {
	if text == "" {
		return nil, fmt.Errorf("%w: text is required", domain.ErrInvalidInput)
	}
	return s.resolver.Resolve(ctx, &ocr.Transcript{Text: text})
}

func (s *service) resolveTarget(policyKey string, targetValue int) (int, error) {
	if policyKey != "" {
		policy, err := domain.PolicyByKey(policyKey)
		if err != nil {
			return 0, fmt.Errorf("%w: %s", domain.ErrUnknownPolicy, policyKey)
		}
		return policy.TargetValue, nil
	}
	if targetValue < 0 {
		return 0, fmt.Errorf("%w: target value must not be negative", domain.ErrInvalidInput)
	}
	return targetValue, nil
}
