package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"freelance-marketplace-client/internal/entity"
)

func testSession() *entity.Session {
	return &entity.Session{
		Token: "jwt-123",
		User: entity.User{
			Id:    "u1",
			Nom:   "Trabelsi",
			Email: "sami@example.tn",
			Role:  "freelance",
		},
	}
}

func TestFileStorePersistsEveryIdentityKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	if err := store.Set(testSession()); err != nil {
		t.Fatalf("set: %v", err)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read session file: %v", err)
	}
	var values map[string]string
	if err := json.Unmarshal(raw, &values); err != nil {
		t.Fatalf("decode session file: %v", err)
	}

	if values["token"] != "jwt-123" {
		t.Fatalf("unexpected token: %q", values["token"])
	}
	if values["userId"] != "u1" || values["userEmail"] != "sami@example.tn" || values["userRole"] != "freelance" {
		t.Fatalf("unexpected flat keys: %v", values)
	}
	var user entity.User
	if err := json.Unmarshal([]byte(values["user"]), &user); err != nil {
		t.Fatalf("decode serialized user: %v", err)
	}
	if user.Nom != "Trabelsi" {
		t.Fatalf("unexpected serialized user: %+v", user)
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	if _, ok := store.Current(); ok {
		t.Fatal("expected no session before login")
	}

	if err := store.Set(testSession()); err != nil {
		t.Fatalf("set: %v", err)
	}

	// a fresh store over the same file sees the session
	reopened := NewFileStore(path)
	sess, ok := reopened.Current()
	if !ok {
		t.Fatal("expected a session after reopen")
	}
	if sess.Token != "jwt-123" || sess.User.Role != "freelance" {
		t.Fatalf("unexpected session: %+v", sess)
	}
}

func TestFileStoreClearRemovesEverything(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	store := NewFileStore(path)

	if err := store.Set(testSession()); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	if _, ok := store.Current(); ok {
		t.Fatal("expected no session after clear")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected session file removed, got %v", err)
	}
	// clearing twice is not an error
	if err := store.Clear(); err != nil {
		t.Fatalf("second clear: %v", err)
	}
}

func TestSubscribersAreNotifiedAndReRead(t *testing.T) {
	store := NewMemoryStore()

	var seen []string
	unsubscribe := store.Subscribe(func() {
		if sess, ok := store.Current(); ok {
			seen = append(seen, sess.User.Role)
		} else {
			seen = append(seen, "none")
		}
	})

	if err := store.Set(testSession()); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("clear: %v", err)
	}

	unsubscribe()
	if err := store.Set(testSession()); err != nil {
		t.Fatalf("set after unsubscribe: %v", err)
	}

	if len(seen) != 2 || seen[0] != "freelance" || seen[1] != "none" {
		t.Fatalf("unexpected notifications: %v", seen)
	}
}

func TestCurrentFallsBackToFlatKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	raw := `{"token":"jwt-9","userId":"u9","userEmail":"a@b.tn","userRole":"client","user":"{broken"}`
	if err := os.WriteFile(path, []byte(raw), 0o600); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	sess, ok := NewFileStore(path).Current()
	if !ok {
		t.Fatal("expected a session")
	}
	if sess.User.Id != "u9" || sess.User.Email != "a@b.tn" || sess.User.Role != "client" {
		t.Fatalf("expected flat keys to fill the user, got %+v", sess.User)
	}
}
