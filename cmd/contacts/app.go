package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"bitbucket.org/sotavant/contacts-app/internal/devicebook"
	"bitbucket.org/sotavant/contacts-app/internal/history"
	"bitbucket.org/sotavant/contacts-app/internal/logger"
	"bitbucket.org/sotavant/contacts-app/internal/models"
	"bitbucket.org/sotavant/contacts-app/internal/phone"
	"bitbucket.org/sotavant/contacts-app/internal/store"
	"go.uber.org/zap"
)

const usage = `commands:
  list
  search <query>
  get <id>
  add <first> <last> <phone> [photo file]
  update <id> <first> <last> <phone> [photo file]
  delete <id>
  upload <photo file>
  badges <device numbers file>
  history
  quit`

type app struct {
	store   *store.ContactStore
	remote  store.Remote
	history *history.Store
	out     io.Writer
}

func newApp(s *store.ContactStore, r store.Remote, h *history.Store, out io.Writer) *app {
	return &app{store: s, remote: r, history: h, out: out}
}

func (a *app) run(ctx context.Context, args []string) error {
	cmd, rest := args[0], args[1:]

	switch cmd {
	case "list":
		return a.list(ctx)
	case "search":
		if err := expectArgs(rest, 1, 1, "search <query>"); err != nil {
			return err
		}
		return a.search(ctx, rest[0])
	case "get":
		if err := expectArgs(rest, 1, 1, "get <id>"); err != nil {
			return err
		}
		return a.get(ctx, rest[0])
	case "add":
		if err := expectArgs(rest, 3, 4, "add <first> <last> <phone> [photo file]"); err != nil {
			return err
		}
		return a.add(ctx, rest)
	case "update":
		if err := expectArgs(rest, 4, 5, "update <id> <first> <last> <phone> [photo file]"); err != nil {
			return err
		}
		return a.update(ctx, rest)
	case "delete":
		if err := expectArgs(rest, 1, 1, "delete <id>"); err != nil {
			return err
		}
		return a.delete(ctx, rest[0])
	case "upload":
		if err := expectArgs(rest, 1, 1, "upload <photo file>"); err != nil {
			return err
		}
		return a.upload(ctx, rest[0])
	case "badges":
		if err := expectArgs(rest, 1, 1, "badges <device numbers file>"); err != nil {
			return err
		}
		return a.badges(ctx, rest[0])
	case "history":
		a.printHistory()
		return nil
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
}

// interactive reads commands line by line. Command errors are printed
// and the session keeps going; only a broken input stream ends it.
func (a *app) interactive(ctx context.Context, in io.Reader) error {
	fmt.Fprintln(a.out, usage)

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(a.out, "> ")
		if !scanner.Scan() {
			break
		}

		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}
		if args[0] == "quit" || args[0] == "exit" {
			break
		}

		if err := a.run(ctx, args); err != nil {
			fmt.Fprintln(a.out, "error:", err)
		}
	}
	return scanner.Err()
}

func (a *app) list(ctx context.Context) error {
	contacts, err := a.store.Refresh(ctx)
	if err != nil {
		return err
	}

	a.printContacts(contacts)
	return nil
}

func (a *app) search(ctx context.Context, query string) error {
	a.history.Add(query)

	// read path: a failed refresh degrades to the cached list
	if _, err := a.store.Refresh(ctx); err != nil {
		logger.Log.Debug("refresh before search failed, searching cache", zap.Error(err))
	}

	a.printContacts(store.Filter(a.store.Contacts(), query))
	return nil
}

func (a *app) get(ctx context.Context, id string) error {
	if _, err := a.store.Refresh(ctx); err != nil {
		logger.Log.Debug("refresh before get failed, reading cache", zap.Error(err))
	}

	c, ok := a.store.Find(id)
	if !ok {
		return fmt.Errorf("contact %s not found", id)
	}

	fmt.Fprintf(a.out, "%s (%s)\n", c.FullName(), c.Initials())
	fmt.Fprintln(a.out, phone.Format(c.PhoneNumber))
	if c.PhotoURI != "" {
		fmt.Fprintln(a.out, c.PhotoURI)
	}
	return nil
}

func (a *app) add(ctx context.Context, args []string) error {
	contact := models.NewContact(args[0], args[1], args[2])
	if err := contact.Validate(); err != nil {
		return err
	}

	if len(args) == 4 {
		res := a.remote.UploadImage(ctx, args[3])
		if err := res.Err(); err != nil {
			return err
		}
		contact.PhotoURI = res.Value()
	}

	created, err := a.store.Create(ctx, contact)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "created %s\n", created.ID)
	return nil
}

func (a *app) update(ctx context.Context, args []string) error {
	contact := models.Contact{
		ID:          args[0],
		FirstName:   args[1],
		LastName:    args[2],
		PhoneNumber: args[3],
	}
	if err := contact.Validate(); err != nil {
		return err
	}

	if existing, ok := a.store.Find(contact.ID); ok {
		contact.PhotoURI = existing.PhotoURI
	}
	if len(args) == 5 {
		res := a.remote.UploadImage(ctx, args[4])
		if err := res.Err(); err != nil {
			return err
		}
		contact.PhotoURI = res.Value()
	}

	updated, err := a.store.Update(ctx, contact)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "updated %s\n", updated.ID)
	return nil
}

func (a *app) delete(ctx context.Context, id string) error {
	if err := a.store.Delete(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "deleted %s\n", id)
	return nil
}

func (a *app) upload(ctx context.Context, path string) error {
	res := a.remote.UploadImage(ctx, path)
	if err := res.Err(); err != nil {
		return err
	}

	fmt.Fprintln(a.out, res.Value())
	return nil
}

// badges lists the contacts, marking those whose number is already in
// the device address book. The numbers come one per line from a file
// exported on the device side.
func (a *app) badges(ctx context.Context, path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read device numbers: %w", err)
	}

	if _, err := a.store.Refresh(ctx); err != nil {
		logger.Log.Debug("refresh before badges failed, reading cache", zap.Error(err))
	}

	contacts := a.store.Contacts()
	known := devicebook.Badge(devicebook.NumberSet(strings.Split(string(raw), "\n")), contacts)

	for _, c := range contacts {
		marker := " "
		if known[c.ID] {
			marker = "*"
		}
		fmt.Fprintf(a.out, "%s %s\t%s\t%s\n", marker, c.ID, c.FullName(), phone.Format(c.PhoneNumber))
	}
	return nil
}

func (a *app) printHistory() {
	queries := a.history.List()
	if len(queries) == 0 {
		fmt.Fprintln(a.out, "no recent searches")
		return
	}
	for _, q := range queries {
		fmt.Fprintln(a.out, q)
	}
}

func (a *app) printContacts(contacts []models.Contact) {
	if len(contacts) == 0 {
		fmt.Fprintln(a.out, "no contacts")
		return
	}
	for _, c := range contacts {
		fmt.Fprintf(a.out, "%s\t%s\t%s\n", c.ID, c.FullName(), phone.Format(c.PhoneNumber))
	}
}

func expectArgs(args []string, min, max int, usage string) error {
	if len(args) < min || len(args) > max {
		return fmt.Errorf("usage: %s", usage)
	}
	return nil
}
