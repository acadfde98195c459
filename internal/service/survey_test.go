package service

import (
	"testing"

	"alpharoot/internal/dto"
	"alpharoot/pkg/apperrors"
	"alpharoot/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSurvey() dto.SurveyRequest {
	return dto.SurveyRequest{
		Name:       "Alice",
		Age:        "30s",
		Experience: "1-3 years",
		Goal:       "long-term growth",
		Risk:       "moderate",
		Industries: []string{"IT", "BIO"},
	}
}

func TestSurveyService_Submit(t *testing.T) {
	svc := NewSurveyService(logger.Nop(), testStore(t))

	resp, err := svc.Submit(validSurvey())
	require.NoError(t, err)
	assert.Equal(t, "Alice", resp.Name)
	assert.False(t, resp.SubmittedAt.IsZero())

	stored, err := svc.Get()
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, []string{"IT", "BIO"}, stored.Industries)
}

func TestSurveyService_SubmitValidation(t *testing.T) {
	svc := NewSurveyService(logger.Nop(), testStore(t))

	tests := []struct {
		name   string
		mutate func(*dto.SurveyRequest)
		field  string
	}{
		{name: "short name", mutate: func(r *dto.SurveyRequest) { r.Name = "A" }, field: "name"},
		{name: "missing age", mutate: func(r *dto.SurveyRequest) { r.Age = "" }, field: "age"},
		{name: "missing experience", mutate: func(r *dto.SurveyRequest) { r.Experience = "" }, field: "experience"},
		{name: "missing goal", mutate: func(r *dto.SurveyRequest) { r.Goal = "" }, field: "goal"},
		{name: "missing risk", mutate: func(r *dto.SurveyRequest) { r.Risk = "" }, field: "risk"},
		{name: "no industries", mutate: func(r *dto.SurveyRequest) { r.Industries = nil }, field: "industries"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validSurvey()
			tt.mutate(&req)

			_, err := svc.Submit(req)
			var ve *apperrors.ValidationError
			require.ErrorAs(t, err, &ve)
			assert.Equal(t, tt.field, ve.Field)
		})
	}
}

func TestSurveyService_GetWithoutSubmission(t *testing.T) {
	svc := NewSurveyService(logger.Nop(), testStore(t))

	resp, err := svc.Get()
	require.NoError(t, err)
	assert.Nil(t, resp)
}

func TestSurveyService_ResubmitReplaces(t *testing.T) {
	svc := NewSurveyService(logger.Nop(), testStore(t))

	_, err := svc.Submit(validSurvey())
	require.NoError(t, err)

	second := validSurvey()
	second.Risk = "aggressive"
	_, err = svc.Submit(second)
	require.NoError(t, err)

	stored, err := svc.Get()
	require.NoError(t, err)
	assert.Equal(t, "aggressive", stored.Risk)
}
