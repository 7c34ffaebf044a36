package idgen_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tides-game/tides-api/internal/pkg/idgen"
)

func TestSequential(t *testing.T) {
	g := idgen.NewSequential("sale")
	assert.Equal(t, "sale_1", g.Generate())
	assert.Equal(t, "sale_2", g.Generate())

	bare := idgen.NewSequential("")
	assert.Equal(t, "1", bare.Generate())
}

func TestUUID(t *testing.T) {
	id := idgen.NewUUID("sale").Generate()
	require.True(t, strings.HasPrefix(id, "sale_"))

	_, err := uuid.Parse(strings.TrimPrefix(id, "sale_"))
	assert.NoError(t, err)
	assert.NotEqual(t, id, idgen.NewUUID("sale").Generate())
}
