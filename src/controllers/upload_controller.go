package controllers

import (
	"encoding/csv"
	"errors"
	"io"
	"net/http"

	"Backend-EduPredict/src/services/ingestion"
	"Backend-EduPredict/src/utils"

	"github.com/gofiber/fiber/v2"
)

// UploadRecords godoc
// @Summary Upload a record batch
// @Description Upload one domain's records as a CSV file (multipart field "file") or a JSON row array. Valid rows are upserted, invalid rows reported; a file missing required columns is rejected outright.
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Param domain path string true "Record domain" Enums(students, attendance, assessments, fees)
// @Param file formData file false "CSV file with a header row"
// @Success 200 {object} ingestion.Report
// @Failure 400 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /upload/{domain} [post]
func UploadRecords(c *fiber.Ctx) error {
	domain, err := ingestion.ParseDomain(c.Params("domain"))
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	batch, err := batchFromRequest(c)
	if err != nil {
		return utils.HandleError(c, http.StatusBadRequest, err.Error())
	}

	report, err := ingestion.Ingest(c.Context(), domain, batch)
	if err != nil {
		var schemaErr *ingestion.SchemaError
		if errors.As(err, &schemaErr) {
			return utils.HandleError(c, http.StatusBadRequest, schemaErr.Error())
		}
		return utils.HandleError(c, http.StatusInternalServerError, "Error processing "+string(domain)+" batch")
	}

	return c.JSON(report)
}

// batchFromRequest accepts either a multipart CSV upload or a JSON body
// carrying the rows directly.
func batchFromRequest(c *fiber.Ctx) (ingestion.Batch, error) {
	fileHeader, err := c.FormFile("file")
	if err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			return ingestion.Batch{}, errors.New("failed to open uploaded file")
		}
		defer file.Close()
		return batchFromCSV(file)
	}

	var batch ingestion.Batch
	if err := c.BodyParser(&batch); err != nil {
		return ingestion.Batch{}, errors.New("expected a CSV file upload or a JSON row batch")
	}
	if len(batch.Rows) == 0 {
		return ingestion.Batch{}, errors.New("batch contains no rows")
	}
	return batch, nil
}

func batchFromCSV(r io.Reader) (ingestion.Batch, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1 // ragged rows fail row validation, not the file

	header, err := reader.Read()
	if err != nil {
		return ingestion.Batch{}, errors.New("uploaded file has no readable header row")
	}

	batch := ingestion.Batch{Columns: header}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return ingestion.Batch{}, errors.New("uploaded file is not valid CSV")
		}

		row := ingestion.Row{}
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		batch.Rows = append(batch.Rows, row)
	}

	return batch, nil
}
