package memory

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"coffeeapi/internal/model"
	"coffeeapi/internal/repository"
)

func TestCoffeeMemDB(t *testing.T) {
	ctx := context.Background()
	repo, err := NewCoffeeMemDB()
	require.NoError(t, err)

	t.Run("empty store", func(t *testing.T) {
		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, all)
		assert.Empty(t, all)
	})

	t.Run("save replaces by id", func(t *testing.T) {
		_, err := repo.Save(ctx, model.Coffee{ID: "fixed", Name: "A"})
		require.NoError(t, err)
		_, err = repo.Save(ctx, model.Coffee{ID: "fixed", Name: "B"})
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, "fixed")
		require.NoError(t, err)
		assert.Equal(t, model.Coffee{ID: "fixed", Name: "B"}, *got)
	})

	t.Run("returned records are copies", func(t *testing.T) {
		got, err := repo.FindByID(ctx, "fixed")
		require.NoError(t, err)
		got.Name = "mutated"

		again, err := repo.FindByID(ctx, "fixed")
		require.NoError(t, err)
		assert.Equal(t, "B", again.Name)
	})

	t.Run("not found", func(t *testing.T) {
		got, err := repo.FindByID(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
		assert.Nil(t, got)

		ok, err := repo.ExistsByID(ctx, "missing")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("delete is idempotent", func(t *testing.T) {
		require.NoError(t, repo.DeleteByID(ctx, "fixed"))
		require.NoError(t, repo.DeleteByID(ctx, "fixed"))

		ok, err := repo.ExistsByID(ctx, "fixed")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("save all", func(t *testing.T) {
		batch := []model.Coffee{model.NewCoffee("Cafe Cereza"), model.NewCoffee("Cafe Ganador")}
		out, err := repo.SaveAll(ctx, batch)
		require.NoError(t, err)
		assert.Equal(t, batch, out)

		all, err := repo.FindAll(ctx)
		require.NoError(t, err)
		assert.ElementsMatch(t, batch, all)
	})

	t.Run("empty id is rejected", func(t *testing.T) {
		_, err := repo.Save(ctx, model.Coffee{Name: "nameless"})
		assert.Error(t, err)
	})
}

func TestCoffeeMemDB_ConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	repo, err := NewCoffeeMemDB()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := repo.Save(ctx, model.NewCoffee("Espresso"))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
