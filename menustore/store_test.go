package menustore

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strconv"
	"sync"
	"testing"

	"github.com/hazyhaar/kantina/menu"
)

func sample(week string) *menu.Menu {
	return &menu.Menu{
		WeekNumber: week,
		Days: []menu.Day{
			{Day: "Mandag", Dishes: []string{"Varmrett: Fiskesuppe"}},
		},
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "menus"))

	path, err := store.Save("12", sample("12"))
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Base(path) != "12.json" {
		t.Errorf("path: got %s", path)
	}

	got, err := store.Load("12")
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(got, sample("12")) {
		t.Errorf("got %+v", got)
	}
}

func TestLoad_NotFound(t *testing.T) {
	store := New(t.TempDir())
	_, err := store.Load("33")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestSave_RejectsNonNumericKeys(t *testing.T) {
	// WHAT: Week keys outside [0-9]+ never reach the filesystem.
	// WHY: Keys are derived from user-supplied filenames.
	store := New(t.TempDir())
	for _, week := range []string{"", "12a", "../12", "12/13"} {
		if _, err := store.Save(week, sample("12")); err == nil {
			t.Errorf("key %q accepted", week)
		}
	}
}

func TestSave_NoTempFileLeftBehind(t *testing.T) {
	dir := t.TempDir()
	store := New(dir)
	if _, err := store.Save("7", sample("7")); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "7.json" {
		t.Errorf("dir contents: %v", entries)
	}
}

func TestSave_ConcurrentSameWeek(t *testing.T) {
	// WHAT: Concurrent writes to one week leave a single consistent file.
	// WHY: Uploads for the same week may race; last writer wins, whole.
	store := New(t.TempDir())

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			m := sample("12")
			m.Days[0].Dishes = []string{"Varmrett: variant " + strconv.Itoa(i)}
			if _, err := store.Save("12", m); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()

	got, err := store.Load("12")
	if err != nil {
		t.Fatal(err)
	}
	if got.WeekNumber != "12" || len(got.Days) != 1 || len(got.Days[0].Dishes) != 1 {
		t.Errorf("inconsistent stored menu: %+v", got)
	}
}
