package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TypeReanalyzeStudents = "risk:reanalyze"

type ReanalyzePayload struct {
	StudentIDs []string `json:"student_ids"`
}

// NewReanalyzeStudentsTask builds a background task that re-scores the
// given students after an ingestion batch.
func NewReanalyzeStudentsTask(studentIDs []string) (*asynq.Task, error) {
	payload, err := json.Marshal(ReanalyzePayload{StudentIDs: studentIDs})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeReanalyzeStudents, payload), nil
}

const TypeReanalyzeAll = "risk:reanalyze_all"

// NewReanalyzeAllTask builds a background task that re-scores the entire
// student population.
func NewReanalyzeAllTask() (*asynq.Task, error) {
	return asynq.NewTask(TypeReanalyzeAll, nil), nil
}
