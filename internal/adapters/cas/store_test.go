package cas_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"go.trai.ch/jute/internal/adapters/cas"
	"go.trai.ch/jute/internal/core/domain"
)

func TestStore_PutAndGet(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	result := domain.BuildResult{
		Fingerprint: "abc",
		ProjectDir:  root,
		Arguments:   []string{"build", "-Pfoo=bar"},
		Success:     true,
		Duration:    2 * time.Second,
		Timestamp:   time.Now().UTC().Truncate(time.Second),
		Output:      "BUILD SUCCESSFUL",
	}

	if err := store.Put(root, result); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(root, "abc")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if !got.Success || got.Duration != result.Duration {
		t.Errorf("unexpected result: %+v", got)
	}
}

func TestStore_Persistence(t *testing.T) {
	root := t.TempDir()

	// 1. Create store and save data
	store1 := cas.NewStore()
	if err := store1.Put(root, domain.BuildResult{
		Fingerprint: "xyz",
		ExitCode:    1,
		Arguments:   []string{"check"},
		Output:      "FAILURE: Build failed with an exception.",
	}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if _, err := os.Stat(cas.Path(root)); err != nil {
		t.Fatalf("store file not written: %v", err)
	}

	// 2. A new store instance reads the same file
	store2 := cas.NewStore()
	got, err := store2.Get(root, "xyz")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Fatal("Get returned nil")
	}
	if got.ExitCode != 1 || len(got.Arguments) != 1 || got.Arguments[0] != "check" {
		t.Errorf("unexpected result: %+v", got)
	}
	if got.Output != "" {
		t.Errorf("output must not be persisted, got %q", got.Output)
	}
}

func TestStore_GetMissing(t *testing.T) {
	store := cas.NewStore()

	got, err := store.Get(t.TempDir(), "nothing")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("expected nil, got %+v", got)
	}
}

func TestStore_SeparateRoots(t *testing.T) {
	rootA, rootB := t.TempDir(), t.TempDir()
	store := cas.NewStore()

	if err := store.Put(rootA, domain.BuildResult{Fingerprint: "same", Success: true}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(rootB, "same")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("results leaked across roots: %+v", got)
	}
}

func TestStore_PutWithoutFingerprint(t *testing.T) {
	err := cas.NewStore().Put(t.TempDir(), domain.BuildResult{})
	if !errors.Is(err, domain.ErrStoreWriteFailed) {
		t.Fatalf("expected ErrStoreWriteFailed, got %v", err)
	}
}

func TestStore_CorruptFile(t *testing.T) {
	root := t.TempDir()
	path := cas.Path(root)
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), domain.PrivateFilePerm); err != nil {
		t.Fatal(err)
	}

	_, err := cas.NewStore().Get(root, "abc")
	if !errors.Is(err, domain.ErrStoreReadFailed) {
		t.Fatalf("expected ErrStoreReadFailed, got %v", err)
	}
}

func TestStore_StateDirIsFile(t *testing.T) {
	root := t.TempDir()
	// A file where the state directory should be makes the store unreadable.
	if err := os.WriteFile(filepath.Join(root, domain.StateDirName), nil, domain.PrivateFilePerm); err != nil {
		t.Fatal(err)
	}

	err := cas.NewStore().Put(root, domain.BuildResult{Fingerprint: "abc"})
	if !errors.Is(err, domain.ErrStoreReadFailed) {
		t.Fatalf("expected ErrStoreReadFailed, got %v", err)
	}
}

func TestStore_FailedWriteIsNotCached(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	if err := store.Put(root, domain.BuildResult{Fingerprint: "first", Success: true}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	// Replace the state directory with a file so the next write fails.
	stateDir := filepath.Join(root, domain.StateDirName)
	if err := os.RemoveAll(stateDir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stateDir, nil, domain.PrivateFilePerm); err != nil {
		t.Fatal(err)
	}

	err := store.Put(root, domain.BuildResult{Fingerprint: "second", Success: true})
	if !errors.Is(err, domain.ErrStoreWriteFailed) {
		t.Fatalf("expected ErrStoreWriteFailed, got %v", err)
	}

	got, err := store.Get(root, "second")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got != nil {
		t.Errorf("failed write must not be cached, got %+v", got)
	}

	got, err = store.Get(root, "first")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil {
		t.Error("earlier result must survive a failed write")
	}
}

func TestStore_OutputIsNotKept(t *testing.T) {
	root := t.TempDir()
	store := cas.NewStore()

	if err := store.Put(root, domain.BuildResult{Fingerprint: "abc", Output: "BUILD SUCCESSFUL"}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := store.Get(root, "abc")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got == nil || got.Output != "" {
		t.Errorf("output must not be kept in memory, got %+v", got)
	}
}
