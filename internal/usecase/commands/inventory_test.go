//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"card-drop/internal/pkg/errs"
	"card-drop/internal/pkg/random"
	"card-drop/internal/usecase/commands"
	sharedmock "card-drop/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestInventoryCommands(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T, seq ...int) (*sharedmock.MockItemSource, *sharedmock.MockCatalogStore, commands.InventoryCommands) {
		ctrl := gomock.NewController(t)
		source := sharedmock.NewMockItemSource(ctrl)
		catalog := sharedmock.NewMockCatalogStore(ctrl)
		inv := commands.NewInventoryCommands(source, catalog, random.NewSequence(seq...), discardLogger())
		return source, catalog, inv
	}

	t.Run("load values every listed item", func(t *testing.T) {
		source, catalog, inv := setup(t, 1)
		source.EXPECT().ListItemIDs(gomock.Any()).Return([]string{"a.png", "b.png"}, nil)
		catalog.EXPECT().AssignIfAbsent(gomock.Any(), "a.png", "b.png").Return(2, nil)

		n, err := inv.Load(ctx)
		require.NoError(t, err)
		assert.Equal(t, 2, n)
		assert.Equal(t, []string{"a.png", "b.png"}, inv.Items())

		item, err := inv.Pick()
		require.NoError(t, err)
		assert.Equal(t, "b.png", item)
	})

	t.Run("pick on empty inventory", func(t *testing.T) {
		_, _, inv := setup(t)
		_, err := inv.Pick()
		assert.ErrorIs(t, err, errs.ErrNoItemsAvailable)
	})

	t.Run("listing failure keeps previous items", func(t *testing.T) {
		source, catalog, inv := setup(t)
		source.EXPECT().ListItemIDs(gomock.Any()).Return([]string{"a.png"}, nil)
		catalog.EXPECT().AssignIfAbsent(gomock.Any(), "a.png").Return(1, nil)
		_, err := inv.Load(ctx)
		require.NoError(t, err)

		source.EXPECT().ListItemIDs(gomock.Any()).Return(nil, errors.New("permission denied"))
		_, err = inv.Load(ctx)
		require.Error(t, err)
		assert.Equal(t, []string{"a.png"}, inv.Items())
	})

	t.Run("persistence failure still replaces the list", func(t *testing.T) {
		source, catalog, inv := setup(t)
		persistErr := errs.Mark(errors.New("disk full"), errs.ErrPersistenceFailure)
		source.EXPECT().ListItemIDs(gomock.Any()).Return([]string{"c.png"}, nil)
		catalog.EXPECT().AssignIfAbsent(gomock.Any(), "c.png").Return(1, persistErr)

		n, err := inv.Load(ctx)
		assert.True(t, errs.Is(err, errs.ErrPersistenceFailure))
		assert.Equal(t, 1, n)
		assert.Equal(t, []string{"c.png"}, inv.Items())
	})
}
