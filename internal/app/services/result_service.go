package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/hosuracademy/academy-api/internal/app/models"
	"github.com/hosuracademy/academy-api/internal/app/repositories"
	"github.com/hosuracademy/academy-api/internal/pkg/apperrors"
	"github.com/hosuracademy/academy-api/internal/pkg/helpers"
)

// rollNumberKeys are the entry fields a roll number may be stored under.
var rollNumberKeys = []string{"rollNumber", "roll_no", "roll_number"}

// ResultService defines the interface for exam result operations
type ResultService interface {
	PublishResult(ctx context.Context, result *models.Result) (*models.Result, error)
	GetAllResults(ctx context.Context) ([]*models.Result, error)
	GetResultByID(ctx context.Context, id string) (*models.Result, error)
	GetResultsForRollNumber(ctx context.Context, rollNumber string) ([]models.StudentResult, error)
}

type resultServiceImpl struct {
	resultRepo *repositories.ResultRepository
}

// NewResultService creates a new result service instance
func NewResultService(resultRepo *repositories.ResultRepository) ResultService {
	return &resultServiceImpl{resultRepo: resultRepo}
}

// PublishResult stores a result sheet stamped with its publish time.
func (s *resultServiceImpl) PublishResult(ctx context.Context, result *models.Result) (*models.Result, error) {
	if result == nil || strings.TrimSpace(result.ExamName) == "" {
		return nil, fmt.Errorf("%w: exam name cannot be empty", apperrors.ErrValidationFailed)
	}
	if result.Results == nil {
		result.Results = []map[string]interface{}{}
	}
	now := helpers.NowUTC()
	result.PublishedAt = &now
	result.ID = strings.TrimSpace(result.ID)

	if err := s.resultRepo.Create(ctx, result); err != nil {
		return nil, fmt.Errorf("error publishing result: %w", err)
	}
	return result, nil
}

func (s *resultServiceImpl) GetAllResults(ctx context.Context) ([]*models.Result, error) {
	results, err := s.resultRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing results: %w", err)
	}
	return results, nil
}

func (s *resultServiceImpl) GetResultByID(ctx context.Context, id string) (*models.Result, error) {
	result, err := s.resultRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error getting result: %w", err)
	}
	return result, nil
}

// GetResultsForRollNumber returns one entry per result sheet that lists the
// roll number. Roll numbers compare case-insensitively after trimming.
func (s *resultServiceImpl) GetResultsForRollNumber(ctx context.Context, rollNumber string) ([]models.StudentResult, error) {
	matches := []models.StudentResult{}
	key := helpers.NormalizeKey(rollNumber)
	if key == "" {
		return matches, nil
	}

	results, err := s.resultRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing results: %w", err)
	}

	for _, result := range results {
		for _, entry := range result.Results {
			if entryRollNumber(entry) != key {
				continue
			}
			matches = append(matches, models.StudentResult{
				ResultID: result.ID,
				ExamName: result.ExamName,
				ExamDate: result.ExamDate,
				Course:   result.Course,
				Batch:    result.Batch,
				Entry:    entry,
			})
			break
		}
	}
	return matches, nil
}

func entryRollNumber(entry map[string]interface{}) string {
	for _, k := range rollNumberKeys {
		if v, ok := entry[k]; ok {
			return helpers.NormalizeKey(rollNumberString(v))
		}
	}
	return ""
}

// rollNumberString formats numeric roll numbers as plain digits.
func rollNumberString(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case json.Number:
		return val.String()
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case nil:
		return ""
	default:
		return fmt.Sprint(val)
	}
}
