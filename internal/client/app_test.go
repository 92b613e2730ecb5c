package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/interchange"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/mock"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

func newTestApp(t *testing.T, input string) (*App, *mock.MockSessionService, *bytes.Buffer) {
	t.Helper()
	ctrl := gomock.NewController(t)
	session := mock.NewMockSessionService(ctrl)
	session.EXPECT().Username().Return("").AnyTimes()
	session.EXPECT().Close(gomock.Any()).Return(nil)

	out := &bytes.Buffer{}
	shell := NewApp(session, models.NewAppBuildInfo("v1.0.0", "", ""), strings.NewReader(input), out, logger.Nop())
	return shell, session, out
}

// ── Run ──────────────────────────────────────────────────────────────────────

func TestApp_Run_EOFClosesSession(t *testing.T) {
	shell, _, out := newTestApp(t, "")

	require.NoError(t, shell.Run())
	assert.Contains(t, out.String(), "vault> ")
}

func TestApp_Run_UnknownCommand(t *testing.T) {
	shell, _, out := newTestApp(t, "frobnicate\nquit\n")

	require.NoError(t, shell.Run())
	assert.Contains(t, out.String(), `error: unknown command "frobnicate"`)
}

func TestApp_Run_Version(t *testing.T) {
	shell, _, out := newTestApp(t, "version\n")

	require.NoError(t, shell.Run())
	assert.Contains(t, out.String(), "Build version: v1.0.0")
	assert.Contains(t, out.String(), "Build date: N/A")
}

// ── Authentication ───────────────────────────────────────────────────────────

func TestApp_Register(t *testing.T) {
	shell, session, out := newTestApp(t, "register alice\npw\npw\n")
	session.EXPECT().Register(gomock.Any(), "alice", "pw").Return(int64(1), nil)

	require.NoError(t, shell.Run())
	assert.Contains(t, out.String(), "user alice registered")
}

func TestApp_Register_PasswordMismatch(t *testing.T) {
	shell, _, out := newTestApp(t, "register alice\npw\nother\n")

	require.NoError(t, shell.Run())
	assert.Contains(t, out.String(), "error: passwords do not match")
}

func TestApp_Unlock(t *testing.T) {
	shell, session, out := newTestApp(t, "unlock alice\ncorrect horse\n")
	session.EXPECT().Unlock(gomock.Any(), "alice", "correct horse").
		Return(models.SessionHandle{AccountID: 1, Username: "alice"}, nil)

	require.NoError(t, shell.Run())
	assert.Contains(t, out.String(), "unlocked vault of alice")
	assert.NotContains(t, out.String(), "correct horse")
}

func TestApp_Unlock_InvalidCredentials(t *testing.T) {
	shell, session, out := newTestApp(t, "unlock alice\nnope\n")
	session.EXPECT().Unlock(gomock.Any(), "alice", "nope").Return(models.SessionHandle{}, service.ErrInvalidCredentials)

	require.NoError(t, shell.Run())
	assert.Contains(t, out.String(), "error: "+app.MsgInvalidLoginPassword)
}

// ── Entries ──────────────────────────────────────────────────────────────────

func TestApp_List(t *testing.T) {
	url := "https://github.com"
	shell, session, out := newTestApp(t, "list\n")
	session.EXPECT().ListEntries(gomock.Any()).Return([]models.EntryView{
		{ID: 1, Service: "github.com", Username: "alice", URL: &url, Strength: models.StrengthStrong, IsFavorited: true},
		{ID: 2, Service: "mail", Group: "personal"},
	}, nil)

	require.NoError(t, shell.Run())
	got := out.String()
	assert.Contains(t, got, "SERVICE")
	assert.Contains(t, got, "github.com")
	assert.Contains(t, got, "https://github.com")
	assert.Contains(t, got, "strong")
	assert.Contains(t, got, "personal")
}

func TestApp_List_Locked(t *testing.T) {
	shell, session, out := newTestApp(t, "list\n")
	session.EXPECT().ListEntries(gomock.Any()).Return(nil, service.ErrLocked)

	require.NoError(t, shell.Run())
	assert.Contains(t, out.String(), app.MsgVaultLocked)
}

func TestApp_Search(t *testing.T) {
	shell, session, out := newTestApp(t, "search git hub\n")
	session.EXPECT().Search(gomock.Any(), "git hub").Return(nil, nil)

	require.NoError(t, shell.Run())
	assert.Contains(t, out.String(), "no entries")
}

func TestApp_Add(t *testing.T) {
	shell, session, out := newTestApp(t, "add github.com alice https://github.com\ns3cr3t\n")
	session.EXPECT().CreateEntry(gomock.Any(), gomock.Any(), "s3cr3t").
		DoAndReturn(func(_ context.Context, fields models.EntryFields, _ string) (models.EntryID, error) {
			assert.Equal(t, "github.com", fields.Service)
			assert.Equal(t, "alice", fields.Username)
			require.NotNil(t, fields.URL)
			assert.Equal(t, "https://github.com", *fields.URL)
			return 4, nil
		})

	require.NoError(t, shell.Run())
	assert.Contains(t, out.String(), "added entry 4")
}

func TestApp_EntryCommands(t *testing.T) {
	tests := []struct {
		name  string
		input string
		setup func(s *mock.MockSessionService)
		want  string
	}{
		{
			name:  "reveal",
			input: "reveal 3\n",
			setup: func(s *mock.MockSessionService) {
				s.EXPECT().RevealSecret(gomock.Any(), models.EntryID(3)).Return("hunter2", nil)
			},
			want: "hunter2",
		},
		{
			name:  "reveal missing",
			input: "reveal 3\n",
			setup: func(s *mock.MockSessionService) {
				s.EXPECT().RevealSecret(gomock.Any(), models.EntryID(3)).Return("", service.ErrNotFound)
			},
			want: "error: " + app.MsgDataNotFound,
		},
		{
			name:  "fav",
			input: "fav 2\n",
			setup: func(s *mock.MockSessionService) {
				s.EXPECT().ToggleFavorite(gomock.Any(), models.EntryID(2)).Return(true, nil)
			},
			want: "entry 2 is a favorite",
		},
		{
			name:  "rm",
			input: "rm 5\n",
			setup: func(s *mock.MockSessionService) {
				s.EXPECT().DeleteEntry(gomock.Any(), models.EntryID(5)).Return(nil)
			},
			want: "deleted entry 5",
		},
		{
			name:  "invalid id",
			input: "rm abc\n",
			setup: func(*mock.MockSessionService) {},
			want:  `invalid entry id "abc"`,
		},
		{
			name:  "lock save failure",
			input: "lock\n",
			setup: func(s *mock.MockSessionService) {
				s.EXPECT().Lock(gomock.Any()).Return(errors.Join(service.ErrSave, errors.New("disk full")))
			},
			want: app.MsgSaveFailed,
		},
		{
			name:  "logout",
			input: "logout\n",
			setup: func(s *mock.MockSessionService) {
				s.EXPECT().Logout(gomock.Any()).Return(nil)
			},
			want: "logged out",
		},
		{
			name:  "save",
			input: "save\n",
			setup: func(s *mock.MockSessionService) {
				s.EXPECT().Save(gomock.Any()).Return(nil)
			},
			want: "saved",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell, session, out := newTestApp(t, tt.input)
			tt.setup(session)

			require.NoError(t, shell.Run())
			assert.Contains(t, out.String(), tt.want)
		})
	}
}

// ── Clipboard ────────────────────────────────────────────────────────────────

type fakeClipboard struct {
	mu     sync.Mutex
	value  string
	writes []string
}

func (c *fakeClipboard) access() clipboardAccess {
	return clipboardAccess{
		write: func(v string) error {
			c.mu.Lock()
			defer c.mu.Unlock()
			c.value = v
			c.writes = append(c.writes, v)
			return nil
		},
		read: func() (string, error) {
			c.mu.Lock()
			defer c.mu.Unlock()
			return c.value, nil
		},
	}
}

func (c *fakeClipboard) current() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func TestApp_Copy_ClearedOnExit(t *testing.T) {
	shell, session, out := newTestApp(t, "copy 3\n")
	session.EXPECT().RevealSecret(gomock.Any(), models.EntryID(3)).Return("hunter2", nil)

	cb := &fakeClipboard{}
	shell.clipboard = cb.access()

	require.NoError(t, shell.Run())
	assert.Contains(t, out.String(), "password copied to clipboard")
	assert.NotContains(t, out.String(), "hunter2")
	assert.Equal(t, []string{"hunter2", ""}, cb.writes)
}

func TestApp_Copy_ClearedAfterTimeout(t *testing.T) {
	shell, session, _ := newTestApp(t, "")
	session.EXPECT().RevealSecret(gomock.Any(), models.EntryID(1)).Return("hunter2", nil)

	cb := &fakeClipboard{}
	shell.clipboard = cb.access()
	shell.clipboardClear = 20 * time.Millisecond

	require.NoError(t, shell.copySecret(context.Background(), []string{"1"}))
	assert.Equal(t, "hunter2", cb.current())

	assert.Eventually(t, func() bool { return cb.current() == "" }, time.Second, 5*time.Millisecond)
	require.NoError(t, shell.Run())
}

func TestApp_Copy_KeepsForeignClipboard(t *testing.T) {
	shell, session, _ := newTestApp(t, "")
	session.EXPECT().RevealSecret(gomock.Any(), models.EntryID(1)).Return("hunter2", nil)

	cb := &fakeClipboard{}
	shell.clipboard = cb.access()
	shell.clipboardClear = 20 * time.Millisecond

	require.NoError(t, shell.copySecret(context.Background(), []string{"1"}))
	require.NoError(t, cb.access().write("something else"))

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, "something else", cb.current())
	require.NoError(t, shell.Run())
}

// ── Interchange ──────────────────────────────────────────────────────────────

func TestApp_ExportImport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	records := []interchange.Record{{Service: "github.com", Username: "alice", Password: "one", Strength: "weak"}}

	shell, session, out := newTestApp(t, "export "+path+"\nimport "+path+"\n")
	session.EXPECT().ExportEntries(gomock.Any()).Return(records, nil)
	session.EXPECT().ImportEntries(gomock.Any(), records).Return(1, nil)

	require.NoError(t, shell.Run())
	assert.Contains(t, out.String(), "exported 1 entries")
	assert.Contains(t, out.String(), "imported 1 entries")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestApp_Export_DoesNotOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.json")
	require.NoError(t, os.WriteFile(path, []byte("keep"), 0o600))

	shell, session, out := newTestApp(t, "export "+path+"\n")
	session.EXPECT().ExportEntries(gomock.Any()).Return(nil, nil)

	require.NoError(t, shell.Run())
	assert.Contains(t, out.String(), "error: cannot create export file "+path)
	assert.NotContains(t, out.String(), "file exists")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data))
}

func TestApp_Import_InvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"format":"other"}`), 0o600))

	shell, _, out := newTestApp(t, "import "+path+"\n")

	require.NoError(t, shell.Run())
	assert.Contains(t, out.String(), "error: "+app.MsgInvalidImport)
}

// ── Errors ───────────────────────────────────────────────────────────────────

func TestApp_PrintErr_HidesInternalDetail(t *testing.T) {
	renameErr := errors.New("rename /home/alice/.local/share/vault/.1.vault.encrypted.tmp-123: permission denied")

	tests := []struct {
		name  string
		input string
		setup func(s *mock.MockSessionService)
		want  string
	}{
		{
			name:  "save failure",
			input: "lock\n",
			setup: func(s *mock.MockSessionService) {
				s.EXPECT().Lock(gomock.Any()).Return(fmt.Errorf("%w: write vault: %w", service.ErrSave, renameErr))
			},
			want: "error: " + app.MsgSaveFailed + "\n",
		},
		{
			name:  "unexpected failure",
			input: "save\n",
			setup: func(s *mock.MockSessionService) {
				s.EXPECT().Save(gomock.Any()).Return(fmt.Errorf("serialize: %w", renameErr))
			},
			want: "error: " + app.MsgCommandFailed + "\n",
		},
		{
			name:  "invalid data",
			input: "logout\n",
			setup: func(s *mock.MockSessionService) {
				s.EXPECT().Logout(gomock.Any()).Return(fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, renameErr))
			},
			want: "error: " + app.MsgInvalidDataProvided + "\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shell, session, out := newTestApp(t, tt.input)
			tt.setup(session)

			require.NoError(t, shell.Run())
			assert.Contains(t, out.String(), tt.want)
			assert.NotContains(t, out.String(), "permission denied")
			assert.NotContains(t, out.String(), ".vault.encrypted")
		})
	}
}
