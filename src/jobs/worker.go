package jobs

import (
	"context"
	"encoding/json"
	"log"

	DB "Backend-EduPredict/src/database"
	"Backend-EduPredict/src/services/risk"

	"github.com/hibiken/asynq"
)

// HandleReanalyzeStudentsTask re-scores the students an ingestion batch
// touched. A student deleted between enqueue and execution is skipped,
// not treated as a failure.
func HandleReanalyzeStudentsTask(ctx context.Context, t *asynq.Task) error {
	var payload ReanalyzePayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	for _, studentID := range payload.StudentIDs {
		if _, err := risk.AnalyzeStudent(ctx, studentID); err != nil {
			if err == risk.ErrStudentNotFound {
				// Records can arrive before the student record does;
				// the next full analysis will catch up.
				continue
			}
			log.Printf("❌ Re-analysis failed for student %s: %v", studentID, err)
			return err
		}
	}

	log.Printf("✅ Background re-analysis done for %d students", len(payload.StudentIDs))
	return nil
}

// HandleReanalyzeAllTask re-scores every student with a Student record.
func HandleReanalyzeAllTask(ctx context.Context, t *asynq.Task) error {
	analyzed, err := risk.AnalyzeAll(ctx)
	if err != nil {
		log.Println("❌ Full re-analysis failed:", err)
		return err
	}
	log.Printf("✅ Full background re-analysis done: %d students", analyzed)
	return nil
}

// StartWorker runs the Asynq worker loop. Called from main in a goroutine
// when Redis is configured.
func StartWorker() {
	if DB.RedisURI == "" {
		log.Println("⚠️ Redis not available. Background worker not started.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{Concurrency: 5},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeReanalyzeStudents, HandleReanalyzeStudentsTask)
	mux.HandleFunc(TypeReanalyzeAll, HandleReanalyzeAllTask)

	if err := srv.Run(mux); err != nil {
		log.Println("❌ Asynq worker stopped:", err)
	}
}
