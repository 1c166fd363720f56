package service

import (
	"testing"

	"evaluationservice/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestAverageScore(t *testing.T) {
	tests := []struct {
		name   string
		scores []int32
		want   float64
	}{
		{"Empty", nil, 0},
		{"Single", []int32{4}, 4},
		{"Pair", []int32{3, 5}, 4},
		{"Fractional", []int32{1, 2, 2}, 5.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answers := make([]*model.Answer, 0, len(tt.scores))
			for _, s := range tt.scores {
				answers = append(answers, &model.Answer{Score: s})
			}
			assert.InDelta(t, tt.want, averageScore(answers), 1e-9)
		})
	}
}

func TestOverallScore(t *testing.T) {
	assert.Equal(t, 0.0, overallScore(nil))
	assert.Equal(t, 0.0, overallScore([]*model.QuestionScore{{AnswerCount: 0}}))
	assert.InDelta(t, 3.5, overallScore([]*model.QuestionScore{
		{AnswerCount: 2, AverageScore: 4},
		{AnswerCount: 0},
		{AnswerCount: 1, AverageScore: 3},
	}), 1e-9)
}
