package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-sheet/internal/pkg/idgen"
)

func TestUUIDGenerator(t *testing.T) {
	id := idgen.NewUUID("sheet").Generate()
	require.True(t, strings.HasPrefix(id, "sheet_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "sheet_"))
	assert.NoError(t, err)

	assert.NotEqual(t, id, idgen.NewUUID("sheet").Generate())

	_, err = uuid.Parse(idgen.NewUUID("").Generate())
	assert.NoError(t, err)
}

func TestSequentialGenerator(t *testing.T) {
	gen := idgen.NewSequential("sheet")
	assert.Equal(t, "sheet_1", gen.Generate())
	assert.Equal(t, "sheet_2", gen.Generate())

	assert.Equal(t, "1", idgen.NewSequential("").Generate())
}
