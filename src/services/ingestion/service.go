package ingestion

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	DB "Backend-EduPredict/src/database"
	"Backend-EduPredict/src/jobs"
	"Backend-EduPredict/src/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Batch - one uploaded file: its column set plus its rows
type Batch struct {
	Columns []string `json:"columns"`
	Rows    []Row    `json:"rows"`
}

// Report - the outcome of one batch. Accepted+Rejected always equals the
// number of submitted rows; every rejection carries its reason.
type Report struct {
	Accepted int        `json:"accepted"`
	Rejected int        `json:"rejected"`
	Errors   []RowError `json:"errors"`
}

// ParseBatch validates the batch schema and every row. Pure: no store
// access. Returns the upsert-ready docs alongside the report and the
// distinct student IDs the batch touches.
func ParseBatch(domain Domain, batch Batch) ([]rowDoc, []string, Report, error) {
	columns := batch.Columns
	if len(columns) == 0 && len(batch.Rows) > 0 {
		// JSON uploads carry no header; derive the column set from the rows.
		seen := map[string]bool{}
		for _, row := range batch.Rows {
			for col := range row {
				seen[col] = true
			}
		}
		for col := range seen {
			columns = append(columns, col)
		}
	}
	if err := checkSchema(domain, columns); err != nil {
		return nil, nil, Report{}, err
	}

	var docs []rowDoc
	var report Report
	touched := map[string]bool{}
	for i, row := range batch.Rows {
		doc, rerr := parseRow(domain, normalizeRow(row))
		if rerr != nil {
			rerr.Row = i + 1
			report.Rejected++
			report.Errors = append(report.Errors, *rerr)
			continue
		}
		report.Accepted++
		docs = append(docs, doc)
		touched[doc.studentID] = true
	}

	studentIDs := make([]string, 0, len(touched))
	for id := range touched {
		studentIDs = append(studentIDs, id)
	}
	sort.Strings(studentIDs)

	return docs, studentIDs, report, nil
}

// normalizeRow lowercases and trims row keys so cell lookup matches
// columns exactly as checkSchema matched them.
func normalizeRow(row Row) Row {
	normalized := make(Row, len(row))
	for col, value := range row {
		normalized[strings.ToLower(strings.TrimSpace(col))] = value
	}
	return normalized
}

// Ingest validates a batch for one domain and upserts the valid rows.
// Best effort, partial success: a failing row is reported and skipped,
// never aborting the rest. A missing required column rejects the whole
// batch with a SchemaError before anything is written.
func Ingest(ctx context.Context, domain Domain, batch Batch) (Report, error) {
	docs, studentIDs, report, err := ParseBatch(domain, batch)
	if err != nil {
		return Report{}, err
	}
	if len(docs) == 0 {
		return report, nil
	}

	collection := collectionFor(domain)
	writes := make([]mongo.WriteModel, 0, len(docs))
	now := time.Now().UTC()
	for _, doc := range docs {
		setOnInsert := bson.M{"id": uuid.NewString()}
		if domain == DomainStudents {
			setOnInsert["createdAt"] = now
		}
		update := bson.M{"$set": bson.M(doc.set), "$setOnInsert": setOnInsert}
		if len(doc.unset) > 0 {
			update["$unset"] = bson.M(doc.unset)
		}
		writes = append(writes, mongo.NewUpdateOneModel().
			SetFilter(bson.M(doc.filter)).
			SetUpdate(update).
			SetUpsert(true))
	}

	if _, err := collection.BulkWrite(ctx, writes); err != nil {
		return Report{}, fmt.Errorf("failed to upsert %s batch: %w", domain, err)
	}

	log.Printf("✅ Ingested %s batch: accepted=%d rejected=%d", domain, report.Accepted, report.Rejected)

	utils.InvalidateOverviewCache()
	enqueueReanalysis(studentIDs)

	return report, nil
}

func collectionFor(domain Domain) *mongo.Collection {
	switch domain {
	case DomainStudents:
		return DB.StudentCollection
	case DomainAttendance:
		return DB.AttendanceCollection
	case DomainAssessments:
		return DB.AssessmentCollection
	default:
		return DB.FeeCollection
	}
}

// enqueueReanalysis schedules background re-scoring for the students a
// batch touched. Without Redis the dashboard simply waits for the next
// explicit analyze call (eventual consistency is acceptable here).
func enqueueReanalysis(studentIDs []string) {
	if DB.AsynqClient == nil || len(studentIDs) == 0 {
		return
	}

	task, err := jobs.NewReanalyzeStudentsTask(studentIDs)
	if err != nil {
		log.Println("⚠️ Failed to build re-analysis task:", err)
		return
	}
	if _, err := DB.AsynqClient.Enqueue(task); err != nil {
		log.Println("⚠️ Failed to enqueue re-analysis task:", err)
		return
	}
	log.Printf("✅ Enqueued re-analysis for %d students", len(studentIDs))
}
