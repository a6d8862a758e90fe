package controllers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBatchFromCSV(t *testing.T) {
	t.Run("HeaderBecomesColumnSet", func(t *testing.T) {
		csv := "student_id,name,email,course,semester\n" +
			"STU001,Anan Srisuk,anan@example.com,Computer Science,3\n" +
			"STU002,Busaba Kaew,busaba@example.com,Mathematics,1\n"

		batch, err := batchFromCSV(strings.NewReader(csv))

		assert.NoError(t, err)
		assert.Equal(t, []string{"student_id", "name", "email", "course", "semester"}, batch.Columns)
		assert.Len(t, batch.Rows, 2)
		assert.Equal(t, "STU002", batch.Rows[1]["student_id"])
	})

	t.Run("EmptyFileIsRejected", func(t *testing.T) {
		_, err := batchFromCSV(strings.NewReader(""))
		assert.Error(t, err)
	})

	t.Run("ShortRowsKeepTheColumnsTheyHave", func(t *testing.T) {
		csv := "student_id,name\nSTU001\n"

		batch, err := batchFromCSV(strings.NewReader(csv))

		assert.NoError(t, err)
		assert.Len(t, batch.Rows, 1)
		assert.Equal(t, "STU001", batch.Rows[0]["student_id"])
		_, ok := batch.Rows[0]["name"]
		assert.False(t, ok)
	})
}
