package users

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByIDMalformedID(t *testing.T) {
	// The hex parse rejects the id before the collection is ever touched,
	// so no database is needed here.
	repo := &UserMongoRepository{}

	user, err := repo.FindByID(context.Background(), "missing")

	require.NoError(t, err)
	assert.Nil(t, user)
}
