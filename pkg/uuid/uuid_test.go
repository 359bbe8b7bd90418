// Copyright (c) 2026 mta. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package uuid_test

import (
	"testing"

	googleuuid "github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/mta/pkg/uuid"
)

func TestNew_Version7(t *testing.T) {
	id, err := googleuuid.Parse(uuid.New())
	require.NoError(t, err)
	assert.Equal(t, googleuuid.Version(7), id.Version())
}

func TestNew_Unique(t *testing.T) {
	assert.NotEqual(t, uuid.New(), uuid.New())
}
