package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompactMap_DropsOnlyNils(t *testing.T) {
	var nilStr *string
	email := "parent@example.com"

	in := map[string]any{
		"applicant_name": "Anu Thomas",
		"email":          &email,
		"guardian_email": nilStr,
		"remarks":        nil,
		"address_line2":  "", // blank but present: must survive
		"marks":          0,  // zero values that are not nil must survive
	}

	out := CompactMap(in)

	assert.Equal(t, "Anu Thomas", out["applicant_name"])
	assert.Equal(t, &email, out["email"])
	assert.Contains(t, out, "marks")
	assert.Contains(t, out, "address_line2")
	assert.NotContains(t, out, "guardian_email")
	assert.NotContains(t, out, "remarks")
}

func TestCompactMap_EmptyInput(t *testing.T) {
	assert.Empty(t, CompactMap(map[string]any{}))
}
