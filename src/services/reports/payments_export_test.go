package reports

import (
	"testing"

	"summer-camp-server/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestPaymentsWorkbook(t *testing.T) {
	id := primitive.NewObjectID()
	payments := []models.Payment{
		{ID: id, MyEmail: "jane@example.com", ClassID: "c1", ClassName: "Robotics", Price: 40, TransactionID: "pi_1", Date: "2026-06-01"},
		{ID: primitive.NewObjectID(), MyEmail: "bob@example.com", ClassID: "c2", ClassName: "Painting", Price: 10.5},
	}

	buf, err := PaymentsWorkbook(payments)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue(PaymentsSheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Payment ID", header)

	first, _ := f.GetCellValue(PaymentsSheet, "A2")
	email, _ := f.GetCellValue(PaymentsSheet, "B2")
	class, _ := f.GetCellValue(PaymentsSheet, "D3")
	label, _ := f.GetCellValue(PaymentsSheet, "D4")
	total, _ := f.GetCellValue(PaymentsSheet, "E4")

	assert.Equal(t, id.Hex(), first)
	assert.Equal(t, "jane@example.com", email)
	assert.Equal(t, "Painting", class)
	assert.Equal(t, "Total", label)
	assert.Equal(t, "50.5", total)
}

func TestPaymentsWorkbookEmpty(t *testing.T) {
	buf, err := PaymentsWorkbook(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(PaymentsSheet)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
}
