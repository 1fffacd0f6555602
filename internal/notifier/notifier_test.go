package notifier

import (
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"testing"

	ps "github.com/mitchellh/go-ps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/lifetrack/internal/constants"
)

type mockProcess struct {
	pid        int
	executable string
}

func (m *mockProcess) Pid() int           { return m.pid }
func (m *mockProcess) PPid() int          { return 0 }
func (m *mockProcess) Executable() string { return m.executable }

func TestTrayAppConfigDir(t *testing.T) {
	tempDir := t.TempDir()

	oldUserConfigDirFunc := userConfigDirFunc
	defer func() { userConfigDirFunc = oldUserConfigDirFunc }()
	userConfigDirFunc = func() (string, error) { return tempDir, nil }

	n := New("")

	dir, err := n.TrayAppConfigDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tempDir, constants.TrayAppIdentifier), dir)

	// A lockfile_dir in settings.json redirects the lookup
	trayConfigDir := filepath.Join(tempDir, constants.TrayAppIdentifier)
	require.NoError(t, os.MkdirAll(trayConfigDir, 0755))
	settingsJSON := `{"settings": {"lockfile_dir": "/custom/lifetrack/dir"}}`
	require.NoError(t, os.WriteFile(filepath.Join(trayConfigDir, "settings.json"), []byte(settingsJSON), 0644))

	dir, err = n.TrayAppConfigDir()
	require.NoError(t, err)
	assert.Equal(t, "/custom/lifetrack/dir", dir)
}

func TestFindAndValidateTrayProcess(t *testing.T) {
	oldFindProcessFunc := findProcessFunc
	defer func() { findProcessFunc = oldFindProcessFunc }()

	tempDir := t.TempDir()
	lockfilePath := filepath.Join(tempDir, constants.NotifierLockfileName)

	writeLockfile := func(content string) {
		require.NoError(t, os.WriteFile(lockfilePath, []byte(content), 0644))
	}

	// Missing lockfile
	_, _, err := findAndValidateTrayProcess(lockfilePath)
	assert.Error(t, err)

	// Malformed contents
	for _, bad := range []string{"8080|12345", "invalid", "notaport|12345|secret", "99999|12345|secret", "8080|12345|  "} {
		writeLockfile(bad)
		_, _, err := findAndValidateTrayProcess(lockfilePath)
		assert.Error(t, err, "lockfile %q", bad)
	}

	// Process not running
	writeLockfile("8080|12345|topsecret")
	findProcessFunc = func(pid int) (ps.Process, error) { return nil, nil }
	_, _, err = findAndValidateTrayProcess(lockfilePath)
	assert.Error(t, err)

	// Pid belongs to some other executable
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: "definitely-not-the-tray"}, nil
	}
	_, _, err = findAndValidateTrayProcess(lockfilePath)
	assert.Error(t, err)

	// Valid
	findProcessFunc = func(pid int) (ps.Process, error) {
		return &mockProcess{pid: pid, executable: constants.TrayAppExecutable}, nil
	}
	port, secret, err := findAndValidateTrayProcess(lockfilePath)
	require.NoError(t, err)
	assert.Equal(t, "8080", port)
	assert.Equal(t, "topsecret", secret)
}

func TestSendNotification(t *testing.T) {
	var gotSecret string
	var gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSecret = r.Header.Get("X-Lifetrack-Secret")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	u, err := url.Parse(server.URL)
	require.NoError(t, err)

	payload := WebhookPayload{Text: "Coffee is due", DurationMs: constants.NotificationDurationMs}
	require.NoError(t, sendNotification(u.Port(), "topsecret", payload))

	assert.Equal(t, "topsecret", gotSecret)
	assert.Contains(t, gotBody, "Coffee is due")
}

func TestSendNotificationNon200(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad secret", http.StatusUnauthorized)
	}))
	defer server.Close()

	u, err := url.Parse(server.URL)
	require.NoError(t, err)

	err = sendNotification(u.Port(), "wrong", WebhookPayload{Text: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
