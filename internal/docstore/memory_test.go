package docstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Insert(ctx, "students", "s1", Document{"name": "Asha", "email": "asha@example.com"}))

	doc, err := store.Get(ctx, "students", "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", doc.ID())
	assert.Equal(t, "Asha", doc["name"])

	err = store.Insert(ctx, "students", "s1", Document{"name": "Other"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	require.NoError(t, store.Replace(ctx, "students", "s1", Document{"name": "Asha K"}))
	doc, err = store.Get(ctx, "students", "s1")
	require.NoError(t, err)
	assert.Equal(t, "Asha K", doc["name"])
	assert.NotContains(t, doc, "email")

	assert.ErrorIs(t, store.Replace(ctx, "students", "missing", Document{}), ErrNotFound)

	require.NoError(t, store.Delete(ctx, "students", "s1"))
	_, err = store.Get(ctx, "students", "s1")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(ctx, "students", "s1"), ErrNotFound)
}

func TestMemoryStoreUpsert(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Upsert(ctx, "users", "u1", Document{"role": "student"}))
	require.NoError(t, store.Upsert(ctx, "users", "u1", Document{"role": "admin"}))

	docs, err := store.List(ctx, "users", 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "admin", docs[0]["role"])
}

func TestMemoryStoreListOrderAndLimit(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	for i := 0; i < 5; i++ {
		require.NoError(t, store.Insert(ctx, "courses", fmt.Sprintf("c%d", i), Document{"n": float64(i)}))
	}

	docs, err := store.List(ctx, "courses", 3)
	require.NoError(t, err)
	require.Len(t, docs, 3)
	assert.Equal(t, "c0", docs[0].ID())
	assert.Equal(t, "c2", docs[2].ID())

	empty, err := store.List(ctx, "nothing", 10)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestMemoryStoreFindByField(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.Insert(ctx, "students", "a", Document{"email": "a@example.com"}))
	require.NoError(t, store.Insert(ctx, "students", "b", Document{"email": "b@example.com"}))
	require.NoError(t, store.Insert(ctx, "students", "c", Document{"email": "a@example.com"}))

	docs, err := store.FindByField(ctx, "students", "email", "a@example.com")
	require.NoError(t, err)
	require.Len(t, docs, 2)
	assert.Equal(t, "a", docs[0].ID())
	assert.Equal(t, "c", docs[1].ID())
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	original := Document{"features": []interface{}{"Live Classes"}}
	require.NoError(t, store.Insert(ctx, "courses", "c1", original))
	original["features"].([]interface{})[0] = "changed"

	doc, err := store.Get(ctx, "courses", "c1")
	require.NoError(t, err)
	doc["features"].([]interface{})[0] = "mutated"

	again, err := store.Get(ctx, "courses", "c1")
	require.NoError(t, err)
	assert.Equal(t, []interface{}{"Live Classes"}, again["features"])
}

func TestMemoryStoreRejectsEmptyKeys(t *testing.T) {
	store := NewMemoryStore()
	assert.Error(t, store.Insert(context.Background(), "students", "", Document{}))
	assert.Error(t, store.Upsert(context.Background(), "", "x", Document{}))
}

func TestMemoryStoreConcurrentWrites(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = store.Insert(ctx, "inquiries", fmt.Sprintf("i%d", i), Document{"n": float64(i)})
		}(i)
	}
	wg.Wait()

	docs, err := store.List(ctx, "inquiries", 0)
	require.NoError(t, err)
	assert.Len(t, docs, 50)
}
