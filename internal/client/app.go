package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/atotto/clipboard"
	"golang.org/x/term"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/interchange"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

const helpText = `commands:
  register <username>                 create an account
  unlock <username>                   unlock the vault
  list                                list entries
  search <query>                      search by service, username or url
  add <service> [username] [url]      add an entry, the password is prompted
  reveal <id>                         print the password of an entry
  copy <id>                           copy the password to the clipboard
  fav <id>                            toggle favorite
  rm <id>                             delete an entry
  save                                write the vault to disk
  lock                                save and lock
  logout                              save, lock and forget the user
  export <file>                       write all entries in plain text
  import <file>                       add entries from an export file
  version                             print build information
  quit                                lock and exit`

// App is a line-oriented vault shell driving a [service.SessionService].
type App struct {
	session   service.SessionService
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	in           *bufio.Scanner
	out          io.Writer
	readPassword func() (string, error)

	clipboard      clipboardAccess
	clipboardClear time.Duration
	clipboardTimer *time.Timer
}

type clipboardAccess struct {
	write func(string) error
	read  func() (string, error)
}

const defaultClipboardClear = 30 * time.Second

// NewApp creates a shell reading commands from in and writing to out. When
// in is a terminal, passwords are read without echo.
func NewApp(session service.SessionService, buildInfo models.AppBuildInfo, in io.Reader, out io.Writer, logger *logger.Logger) *App {
	a := &App{
		session:   session,
		buildInfo: buildInfo,
		logger:    logger,
		in:        bufio.NewScanner(in),
		out:       out,
		clipboard: clipboardAccess{
			write: clipboard.WriteAll,
			read:  clipboard.ReadAll,
		},
		clipboardClear: defaultClipboardClear,
	}

	a.readPassword = a.readLine
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		fd := int(f.Fd())
		a.readPassword = func() (string, error) {
			b, err := term.ReadPassword(fd)
			fmt.Fprintln(a.out)
			return string(b), err
		}
	}
	return a
}

// Run implements Client. It returns when the input ends or on quit, after
// the session has been logged out.
func (a *App) Run() error {
	ctx := a.logger.WithContext(context.Background())
	defer func() {
		if a.clipboardTimer != nil && a.clipboardTimer.Stop() {
			_ = a.clipboard.write("")
		}
		if err := a.session.Close(ctx); err != nil {
			a.printErr(err)
		}
	}()

	fmt.Fprintln(a.out, `go-pass-vault, type "help" for commands`)
	for {
		fmt.Fprint(a.out, a.prompt())

		line, err := a.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(a.out)
			return nil
		}
		if err != nil {
			return fmt.Errorf("read command: %w", err)
		}

		quit, err := a.execute(utils.WithTrace(ctx, a.logger), strings.Fields(line))
		if err != nil {
			a.printErr(err)
		}
		if quit {
			return nil
		}
	}
}

func (a *App) prompt() string {
	if name := a.session.Username(); name != "" {
		return fmt.Sprintf("vault(%s, %s)> ", name, a.session.State())
	}
	return "vault> "
}

func (a *App) execute(ctx context.Context, args []string) (bool, error) {
	if len(args) == 0 {
		return false, nil
	}

	cmd, args := args[0], args[1:]
	switch cmd {
	case "help":
		fmt.Fprintln(a.out, helpText)
	case "version":
		fmt.Fprintln(a.out, a.buildInfo)
	case "quit", "exit":
		return true, nil
	case "register":
		return false, a.register(ctx, args)
	case "unlock":
		return false, a.unlock(ctx, args)
	case "list":
		return false, a.list(ctx, "")
	case "search":
		return false, a.list(ctx, strings.Join(args, " "))
	case "add":
		return false, a.add(ctx, args)
	case "reveal":
		return false, a.reveal(ctx, args)
	case "copy":
		return false, a.copySecret(ctx, args)
	case "fav":
		return false, a.toggleFavorite(ctx, args)
	case "rm":
		return false, a.remove(ctx, args)
	case "save":
		return false, a.done(a.session.Save(ctx), "saved")
	case "lock":
		return false, a.done(a.session.Lock(ctx), "locked")
	case "logout":
		return false, a.done(a.session.Logout(ctx), "logged out")
	case "export":
		return false, a.export(ctx, args)
	case "import":
		return false, a.importFile(ctx, args)
	default:
		return false, inputErrorf("unknown command %q", cmd)
	}
	return false, nil
}

// ── Authentication ───────────────────────────────────────────────────────────

func (a *App) register(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return inputErrorf("usage: register <username>")
	}

	password, err := a.askPassword("Master password: ")
	if err != nil {
		return err
	}
	repeat, err := a.askPassword("Repeat master password: ")
	if err != nil {
		return err
	}
	if password != repeat {
		return inputErrorf("passwords do not match")
	}

	if _, err = a.session.Register(ctx, args[0], password); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "user %s registered, run: unlock %s\n", args[0], args[0])
	return nil
}

func (a *App) unlock(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return inputErrorf("usage: unlock <username>")
	}

	password, err := a.askPassword("Master password: ")
	if err != nil {
		return err
	}

	h, err := a.session.Unlock(ctx, args[0], password)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "unlocked vault of %s\n", h.Username)
	return nil
}

// ── Entries ──────────────────────────────────────────────────────────────────

func (a *App) list(ctx context.Context, query string) error {
	var (
		entries []models.EntryView
		err     error
	)
	if query == "" {
		entries, err = a.session.ListEntries(ctx)
	} else {
		entries, err = a.session.Search(ctx, query)
	}
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Fprintln(a.out, "no entries")
		return nil
	}

	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSERVICE\tUSERNAME\tURL\tGROUP\tSTRENGTH\tFAV")
	for _, e := range entries {
		url := ""
		if e.URL != nil {
			url = *e.URL
		}
		fav := ""
		if e.IsFavorited {
			fav = "*"
		}
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n", e.ID, e.Service, e.Username, url, e.Group, e.Strength, fav)
	}
	return w.Flush()
}

func (a *App) add(ctx context.Context, args []string) error {
	if len(args) < 1 || len(args) > 3 {
		return inputErrorf("usage: add <service> [username] [url]")
	}

	fields := models.EntryFields{Service: args[0]}
	if len(args) > 1 {
		fields.Username = args[1]
	}
	if len(args) > 2 {
		url := args[2]
		fields.URL = &url
	}

	secret, err := a.askPassword("Password: ")
	if err != nil {
		return err
	}

	id, err := a.session.CreateEntry(ctx, fields, secret)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "added entry %d\n", id)
	return nil
}

func (a *App) reveal(ctx context.Context, args []string) error {
	id, err := entryID(args, "reveal")
	if err != nil {
		return err
	}

	secret, err := a.session.RevealSecret(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, secret)
	return nil
}

// copySecret puts the secret on the clipboard and wipes it after
// a.clipboardClear, unless something else was copied in the meantime.
func (a *App) copySecret(ctx context.Context, args []string) error {
	id, err := entryID(args, "copy")
	if err != nil {
		return err
	}

	secret, err := a.session.RevealSecret(ctx, id)
	if err != nil {
		return err
	}
	if err = a.clipboard.write(secret); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}

	if a.clipboardTimer != nil {
		a.clipboardTimer.Stop()
	}
	a.clipboardTimer = time.AfterFunc(a.clipboardClear, func() { a.wipeClipboard(secret) })

	fmt.Fprintf(a.out, "password copied to clipboard, clearing in %s\n", a.clipboardClear)
	return nil
}

// wipeClipboard empties the clipboard if it still holds secret.
func (a *App) wipeClipboard(secret string) {
	current, err := a.clipboard.read()
	if err != nil || current != secret {
		return
	}
	if err = a.clipboard.write(""); err != nil {
		a.logger.Warn().Err(err).Str("func", "*App.wipeClipboard").Msg("error clearing clipboard")
	}
}

func (a *App) toggleFavorite(ctx context.Context, args []string) error {
	id, err := entryID(args, "fav")
	if err != nil {
		return err
	}

	fav, err := a.session.ToggleFavorite(ctx, id)
	if err != nil {
		return err
	}
	if fav {
		fmt.Fprintf(a.out, "entry %d is a favorite\n", id)
	} else {
		fmt.Fprintf(a.out, "entry %d is no longer a favorite\n", id)
	}
	return nil
}

func (a *App) remove(ctx context.Context, args []string) error {
	id, err := entryID(args, "rm")
	if err != nil {
		return err
	}
	return a.done(a.session.DeleteEntry(ctx, id), fmt.Sprintf("deleted entry %d", id))
}

// ── Interchange ──────────────────────────────────────────────────────────────

func (a *App) export(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return inputErrorf("usage: export <file>")
	}

	records, err := a.session.ExportEntries(ctx)
	if err != nil {
		return err
	}

	f, err := os.OpenFile(args[0], os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600)
	if err != nil {
		return wrapInputError(err, "cannot create export file %s, it must not exist yet", args[0])
	}
	if err = interchange.Encode(f, records); err != nil {
		_ = f.Close()
		return err
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close export file: %w", err)
	}

	fmt.Fprintf(a.out, "exported %d entries to %s, the file is not encrypted\n", len(records), args[0])
	return nil
}

func (a *App) importFile(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return inputErrorf("usage: import <file>")
	}

	f, err := os.Open(args[0])
	if err != nil {
		return wrapInputError(err, "cannot open import file %s", args[0])
	}
	defer f.Close()

	records, err := interchange.Decode(f)
	if err != nil {
		return err
	}

	n, err := a.session.ImportEntries(ctx, records)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "imported %d entries\n", n)
	return nil
}

// ── Helpers ──────────────────────────────────────────────────────────────────

func (a *App) readLine() (string, error) {
	if !a.in.Scan() {
		if err := a.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(a.in.Text(), "\r"), nil
}

func (a *App) askPassword(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	password, err := a.readPassword()
	if err != nil {
		return "", fmt.Errorf("read password: %w", err)
	}
	return password, nil
}

func (a *App) done(err error, msg string) error {
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, msg)
	return nil
}

func (a *App) printErr(err error) {
	var inputErr *inputError
	switch {
	case errors.As(err, &inputErr):
		fmt.Fprintf(a.out, "error: %s\n", inputErr.msg)
	case errors.Is(err, service.ErrLocked):
		fmt.Fprintf(a.out, "error: %s\n", app.MsgVaultLocked)
	case errors.Is(err, service.ErrInvalidCredentials):
		fmt.Fprintf(a.out, "error: %s\n", app.MsgInvalidLoginPassword)
	case errors.Is(err, service.ErrUserAlreadyExists):
		fmt.Fprintf(a.out, "error: %s\n", app.MsgLoginAlreadyExists)
	case errors.Is(err, service.ErrAlreadyUnlocked):
		fmt.Fprintf(a.out, "error: %s\n", app.MsgAlreadyUnlocked)
	case errors.Is(err, service.ErrUnlockSuperseded):
		fmt.Fprintf(a.out, "error: %s\n", app.MsgUnlockSuperseded)
	case errors.Is(err, service.ErrAuthentication):
		fmt.Fprintf(a.out, "error: %s\n", app.MsgVaultTampered)
	case errors.Is(err, service.ErrNotFound):
		fmt.Fprintf(a.out, "error: %s\n", app.MsgDataNotFound)
	case errors.Is(err, service.ErrInvalidDataProvided):
		fmt.Fprintf(a.out, "error: %s\n", app.MsgInvalidDataProvided)
	case errors.Is(err, interchange.ErrInvalidDocument), errors.Is(err, interchange.ErrInvalidRecord):
		fmt.Fprintf(a.out, "error: %s: %v\n", app.MsgInvalidImport, err)
	case errors.Is(err, service.ErrSave):
		a.logger.Error().Err(err).Str("func", "*App.printErr").Msg("vault save failed")
		fmt.Fprintf(a.out, "error: %s\n", app.MsgSaveFailed)
		return
	default:
		a.logger.Error().Err(err).Str("func", "*App.printErr").Msg("command failed")
		fmt.Fprintf(a.out, "error: %s\n", app.MsgCommandFailed)
		return
	}
	a.logger.Debug().Err(err).Str("func", "*App.printErr").Msg("command rejected")
}

// inputError is a shell-level error whose message is safe to print as is.
type inputError struct {
	msg string
	err error
}

func (e *inputError) Error() string {
	if e.err == nil {
		return e.msg
	}
	return e.msg + ": " + e.err.Error()
}

func (e *inputError) Unwrap() error {
	return e.err
}

func inputErrorf(format string, args ...any) error {
	return &inputError{msg: fmt.Sprintf(format, args...)}
}

func wrapInputError(err error, format string, args ...any) error {
	return &inputError{msg: fmt.Sprintf(format, args...), err: err}
}

func entryID(args []string, cmd string) (models.EntryID, error) {
	if len(args) != 1 {
		return 0, inputErrorf("usage: %s <id>", cmd)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, inputErrorf("invalid entry id %q", args[0])
	}
	return models.EntryID(id), nil
}
