package service

import (
	"errors"
	"time"

	"alpharoot/internal/dto"
	"alpharoot/internal/model"
	"alpharoot/pkg/apperrors"
	"alpharoot/pkg/localstore"
	"alpharoot/pkg/logger"
)

const surveySnapshotKey = "alpharoot_survey"

// SurveyService stores the investment preference survey in the local store.
type SurveyService struct {
	log   *logger.Logger
	store *localstore.Store
}

func NewSurveyService(log *logger.Logger, store *localstore.Store) *SurveyService {
	return &SurveyService{log: log, store: store}
}

// Submit validates and persists the survey, replacing any previous answer.
func (s *SurveyService) Submit(req dto.SurveyRequest) (*model.SurveyResponse, error) {
	if len([]rune(req.Name)) < 2 {
		return nil, apperrors.NewValidationError("name", "name must be at least 2 characters")
	}
	if req.Age == "" {
		return nil, apperrors.NewValidationError("age", "please select an age group")
	}
	if req.Experience == "" {
		return nil, apperrors.NewValidationError("experience", "please select your investment experience")
	}
	if req.Goal == "" {
		return nil, apperrors.NewValidationError("goal", "please select an investment goal")
	}
	if req.Risk == "" {
		return nil, apperrors.NewValidationError("risk", "please select a risk tolerance")
	}
	if len(req.Industries) == 0 {
		return nil, apperrors.NewValidationError("industries", "please pick at least one industry")
	}

	resp := model.SurveyResponse{
		Name:        req.Name,
		Age:         req.Age,
		Experience:  req.Experience,
		Goal:        req.Goal,
		Risk:        req.Risk,
		Industries:  req.Industries,
		SubmittedAt: time.Now(),
	}
	if err := s.store.SetJSON(surveySnapshotKey, resp); err != nil {
		return nil, err
	}

	s.log.Info("survey submitted", logger.IntField("industries", len(resp.Industries)))
	return &resp, nil
}

// Get returns the stored survey, or nil when none was submitted yet.
func (s *SurveyService) Get() (*model.SurveyResponse, error) {
	var resp model.SurveyResponse
	err := s.store.GetJSON(surveySnapshotKey, &resp)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &resp, nil
}
