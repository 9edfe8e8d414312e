package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/logger"
	"github.com/jonathan/resume-matcher/internal/types"
)

// MatchRequest represents the request body for /match. Exactly one of role
// or role_url must carry the target-role document.
type MatchRequest struct {
	Resume  string `json:"resume" validate:"required"`
	Role    string `json:"role" validate:"required_without=RoleURL,excluded_with=RoleURL"`
	RoleURL string `json:"role_url" validate:"omitempty,url"`

	// Optional per-request scoring overrides; nil uses the server defaults
	Scoring *config.ScoringConfig `json:"scoring,omitempty"`
}

// MatchResponse represents the response for /match
type MatchResponse struct {
	MatchID string            `json:"match_id"`
	Result  types.MatchResult `json:"result"`
}

// handleMatch scores a resume against a role document
func (s *Server) handleMatch(w http.ResponseWriter, r *http.Request) {
	if allowed, _ := s.rateLimiter.Allow(clientID(r)); !allowed {
		s.errorResponse(w, http.StatusTooManyRequests, "rate limit exceeded, try again later")
		return
	}

	var req MatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := s.validate.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	matchID := uuid.New().String()
	log := logger.WithFields(s.logger, zap.String(logger.FieldMatchID, matchID))

	roleText := req.Role
	if req.RoleURL != "" {
		fetched, err := ingestion.FromURL(r.Context(), req.RoleURL)
		if err != nil {
			log.Warn("fetching role posting", zap.Error(err))
			s.errorResponse(w, http.StatusBadGateway, "failed to fetch role posting: "+err.Error())
			return
		}
		roleText = fetched
		log.Debug("fetched role posting",
			zap.String("url", req.RoleURL),
			zap.String("excerpt", logger.TruncateForLog(roleText, 200)))
	}

	scoring := s.scoring
	if req.Scoring != nil {
		scoring = *req.Scoring
	}

	result, err := s.engine.Score(r.Context(),
		types.NewCandidateDocument(req.Resume),
		types.NewTargetDocument(roleText),
		s.vocabulary, scoring)
	if err != nil {
		log.Warn("scoring failed", zap.Error(err))
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	log.Info("match scored",
		zap.Float64("composite", result.CompositeScore),
		zap.String("category", string(result.Breakdown.Category)))

	s.jsonResponse(w, http.StatusOK, MatchResponse{
		MatchID: matchID,
		Result:  *result,
	})
}
