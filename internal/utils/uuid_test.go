// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUUIDGenerator_Generate_ReturnsValidUUID(t *testing.T) {
	g := NewUUIDGenerator()

	id := g.Generate()

	parsed, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.EqualValues(t, 7, parsed.Version())
}

func TestUUIDGenerator_Generate_ReturnsDistinctValues(t *testing.T) {
	g := NewUUIDGenerator()

	assert.NotEqual(t, g.Generate(), g.Generate())
}
