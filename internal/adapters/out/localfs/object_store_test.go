package localfs_test

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printmarket/internal/adapters/out/localfs"
	"printmarket/internal/pkg/errs"
)

func Test_NewObjectStore(t *testing.T) {
	tests := []struct {
		name    string
		dir     string
		wantErr error
	}{
		{
			name: "Valid directory, success",
			dir:  t.TempDir(),
		},
		{
			name:    "Empty directory, error",
			dir:     "",
			wantErr: errs.ErrValueIsRequired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, err := localfs.NewObjectStore(tt.dir)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, store)

				return
			}

			require.NoError(t, err)
			assert.NotNil(t, store)
		})
	}
}

func TestObjectStore_PutGetRoundTrip(t *testing.T) {
	store, err := localfs.NewObjectStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	key, err := store.Put(ctx, "models", strings.NewReader("solid cube"))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(key, "models/"))

	reader, err := store.Get(ctx, key)
	require.NoError(t, err)
	defer reader.Close()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	assert.Equal(t, "solid cube", string(content))
}

func TestObjectStore_Put_DistinctKeys(t *testing.T) {
	store, err := localfs.NewObjectStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	first, err := store.Put(ctx, "photos", strings.NewReader("one"))
	require.NoError(t, err)

	second, err := store.Put(ctx, "photos", strings.NewReader("two"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestObjectStore_Get_MissingKey(t *testing.T) {
	store, err := localfs.NewObjectStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Get(context.Background(), "models/missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestObjectStore_Delete(t *testing.T) {
	store, err := localfs.NewObjectStore(t.TempDir())
	require.NoError(t, err)

	ctx := context.Background()

	key, err := store.Put(ctx, "models", strings.NewReader("payload"))
	require.NoError(t, err)

	require.NoError(t, store.Delete(ctx, key))

	_, err = store.Get(ctx, key)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	assert.NoError(t, store.Delete(ctx, key))
}
