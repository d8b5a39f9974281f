package workspace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"zoomshell/internal/domain"
)

func testSectors() []domain.Sector {
	return []domain.Sector{
		{
			Name:  "WORK",
			Color: "33",
			Apps: []domain.App{
				{Name: "Editor", Windows: []domain.Window{{Title: "main.go"}}},
				{Name: "Terminal", Windows: []domain.Window{{Title: "~"}, {Title: "build"}, {Title: "logs"}}},
			},
		},
		{
			Name:  "MEDIA",
			Color: "214",
			Apps: []domain.App{
				{Name: "Player", Windows: []domain.Window{{Title: "queue"}}},
			},
		},
	}
}

func TestStoreLookups(t *testing.T) {
	store := NewStore(nil)
	store.Load(testSectors())

	require.Equal(t, 2, store.SectorCount())
	require.Equal(t, 2, store.AppCount(0))
	require.Equal(t, 1, store.AppCount(1))

	sec, ok := store.Sector(0)
	require.True(t, ok)
	require.Equal(t, "WORK", sec.Name)

	app, ok := store.App(0, 1)
	require.True(t, ok)
	require.Equal(t, "Terminal", app.Name)

	require.Equal(t, 3, store.WindowCount(0, 1))
	require.Equal(t, 1, store.WindowCount(0, 0))
}

func TestStoreOutOfRange(t *testing.T) {
	store := NewStore(nil)
	store.Load(testSectors())

	_, ok := store.Sector(-1)
	require.False(t, ok)
	_, ok = store.Sector(5)
	require.False(t, ok)
	_, ok = store.App(0, 9)
	require.False(t, ok)
	_, ok = store.App(7, 0)
	require.False(t, ok)

	require.Equal(t, 0, store.WindowCount(7, 0))
	require.Equal(t, 0, store.AppCount(-2))
}

func TestSnapshotIsACopy(t *testing.T) {
	store := NewStore(nil)
	store.Load(testSectors())

	snap := store.Snapshot()
	snap.Sectors[0].Name = "MUTATED"

	sec, ok := store.Sector(0)
	require.True(t, ok)
	require.Equal(t, "WORK", sec.Name)
}

func TestSnapshotIsDetachedAtEveryDepth(t *testing.T) {
	store := NewStore(nil)
	store.Load(testSectors())

	snap := store.Snapshot()
	snap.Sectors[0].Apps[0].Name = "MUTATED"
	snap.Sectors[0].Apps[1].Windows[0].Title = "MUTATED"

	app, ok := store.App(0, 0)
	require.True(t, ok)
	require.Equal(t, "Editor", app.Name)

	app, ok = store.App(0, 1)
	require.True(t, ok)
	require.Equal(t, "~", app.Windows[0].Title)
}

func TestLoadDetachesFromCallerSlice(t *testing.T) {
	sectors := testSectors()
	store := NewStore(nil)
	store.Load(sectors)

	sectors[0].Apps[0].Name = "MUTATED"
	sectors[1].Apps[0].Windows[0].Title = "MUTATED"

	app, ok := store.App(0, 0)
	require.True(t, ok)
	require.Equal(t, "Editor", app.Name)
	require.Equal(t, 1, store.WindowCount(1, 0))

	app, ok = store.App(1, 0)
	require.True(t, ok)
	require.Equal(t, "queue", app.Windows[0].Title)
}
