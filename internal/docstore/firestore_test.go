package docstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromFirestoreUsesDocumentName(t *testing.T) {
	doc := fromFirestore("Xk29aQ", map[string]interface{}{
		"name":          "Asha",
		"roll_no":       "HA001",
		"email":         "asha@example.com",
		"date_of_birth": "2008-05-01",
	})
	assert.Equal(t, "Xk29aQ", doc.ID())
	assert.Equal(t, "HA001", doc["roll_no"])

	doc = fromFirestore("Xk29aQ", map[string]interface{}{IDField: "", "name": "Asha"})
	assert.Equal(t, "Xk29aQ", doc.ID())
}

func TestFromFirestoreKeepsStoredID(t *testing.T) {
	doc := fromFirestore("Xk29aQ", map[string]interface{}{IDField: "s1", "name": "Asha"})
	assert.Equal(t, "s1", doc.ID())
}

func TestFromFirestoreNormalizesIntegers(t *testing.T) {
	doc := fromFirestore("r1", map[string]interface{}{
		"results": []interface{}{
			map[string]interface{}{"rollNumber": "HA001", "marks": int64(92)},
		},
	})
	entries := doc["results"].([]interface{})
	assert.Equal(t, float64(92), entries[0].(map[string]interface{})["marks"])
}
