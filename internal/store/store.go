package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"bitbucket.org/sotavant/contacts-app/internal/logger"
	"bitbucket.org/sotavant/contacts-app/internal/models"
	"bitbucket.org/sotavant/contacts-app/internal/result"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -source=store.go -destination=mock/store.go -package=mock

// Remote is the wire client the store folds its cache from.
type Remote interface {
	FetchAll(ctx context.Context) result.Result[[]models.Contact]
	FetchOne(ctx context.Context, id string) result.Result[models.Contact]
	Create(ctx context.Context, contact models.Contact) result.Result[models.Contact]
	Update(ctx context.Context, contact models.Contact) result.Result[models.Contact]
	Delete(ctx context.Context, id string) result.Result[struct{}]
	UploadImage(ctx context.Context, path string) result.Result[string]
}

// per-subscriber buffer; when a slow reader falls behind, the oldest
// snapshot is dropped so the latest one always lands
const subscriberBuffer = 16

// ContactStore owns the in-memory contact list. Reads are served from
// the cache immediately and refreshed from the network in the
// background; mutations touch the cache only after the remote call
// succeeded. All cache writes happen under one mutex, so concurrent
// mutations cannot lose each other's effect.
type ContactStore struct {
	remote Remote

	mu       sync.Mutex
	contacts []models.Contact
	nextSub  int
	subs     map[int]chan []models.Contact

	refresh singleflight.Group
}

func New(remote Remote) *ContactStore {
	return &ContactStore{
		remote: remote,
		subs:   make(map[int]chan []models.Contact),
	}
}

// ObserveAll returns a live view of the cache, sorted by
// case-insensitive first name. The current snapshot is delivered
// immediately, a background fetch follows, and every later cache
// mutation re-notifies the channel. A failed background fetch re-sends
// the stale snapshot instead of surfacing the error — list views
// degrade to what they had. Cancelling ctx closes the channel; an
// in-flight fetch still completes and updates the shared cache.
func (s *ContactStore) ObserveAll(ctx context.Context) <-chan []models.Contact {
	s.mu.Lock()
	id, ch := s.subscribeLocked()
	send(ch, s.snapshotLocked())
	s.mu.Unlock()

	if ctx.Done() != nil {
		go s.watchCancel(ctx, id)
	}
	go s.backgroundFetch(id)

	return ch
}

// ObserveFiltered is ObserveAll restricted to contacts whose full name
// or phone number contains query. It is a projection of the cache, not
// a separate fetch; a blank query filters nothing.
func (s *ContactStore) ObserveFiltered(ctx context.Context, query string) <-chan []models.Contact {
	in := s.ObserveAll(ctx)
	out := make(chan []models.Contact, subscriberBuffer)

	go func() {
		defer close(out)
		for snapshot := range in {
			send(out, Filter(snapshot, query))
		}
	}()

	return out
}

// ObserveOne yields the cached contact with the given id (nil when
// absent), then refreshes it from the network; a successful refresh is
// folded into the cache and emitted. The channel is closed once the
// refresh settles.
func (s *ContactStore) ObserveOne(ctx context.Context, id string) <-chan *models.Contact {
	ch := make(chan *models.Contact, subscriberBuffer)

	s.mu.Lock()
	cached := s.findLocked(id)
	s.mu.Unlock()
	ch <- cached

	go func() {
		defer close(ch)

		// the fetch outlives the subscriber: a completed refresh is
		// folded into the shared cache either way, cancellation only
		// suppresses the delivery
		res := s.remote.FetchOne(context.Background(), id)
		if !res.IsSuccess() {
			logger.Log.Debug("contact refresh failed, keeping cached value",
				zap.String("id", id), zap.String("error", res.Message()))
			if ctx.Err() == nil {
				ch <- cached
			}
			return
		}

		contact := res.Value()
		s.upsert(contact)
		if ctx.Err() == nil {
			ch <- &contact
		}
	}()

	return ch
}

// Create registers the contact remotely and, on success, folds the
// server's canonical record into the cache. On failure the cache is
// untouched and the error goes back to the caller.
func (s *ContactStore) Create(ctx context.Context, contact models.Contact) (models.Contact, error) {
	res := s.remote.Create(ctx, contact)
	if err := res.Err(); err != nil {
		return models.Contact{}, err
	}

	created := res.Value()
	s.upsert(created)
	return created, nil
}

// Update rewrites the contact remotely and, on success, replaces the
// cache entry with the matching id.
func (s *ContactStore) Update(ctx context.Context, contact models.Contact) (models.Contact, error) {
	res := s.remote.Update(ctx, contact)
	if err := res.Err(); err != nil {
		return models.Contact{}, err
	}

	updated := res.Value()
	s.upsert(updated)
	return updated, nil
}

// Delete removes the contact remotely and, on success, drops it from
// the cache.
func (s *ContactStore) Delete(ctx context.Context, id string) error {
	res := s.remote.Delete(ctx, id)
	if err := res.Err(); err != nil {
		return err
	}

	s.remove(id)
	return nil
}

// Refresh forces a full fetch. Success replaces the cache wholesale and
// returns the new list; failure returns the error with the cache
// untouched.
func (s *ContactStore) Refresh(ctx context.Context) ([]models.Contact, error) {
	res := s.fetchAllShared(ctx)
	if err := res.Err(); err != nil {
		return nil, err
	}
	return s.replaceAll(res.Value()), nil
}

// Contacts returns the current cache snapshot.
func (s *ContactStore) Contacts() []models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Find returns the cached contact with the given id.
func (s *ContactStore) Find(id string) (models.Contact, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c := s.findLocked(id); c != nil {
		return *c, true
	}
	return models.Contact{}, false
}

// Filter keeps the contacts whose full name or phone number contains
// query as a case-insensitive substring. Blank queries keep everything;
// order is preserved.
func Filter(contacts []models.Contact, query string) []models.Contact {
	if strings.TrimSpace(query) == "" {
		return contacts
	}

	q := strings.ToLower(query)
	filtered := make([]models.Contact, 0, len(contacts))
	for _, c := range contacts {
		if strings.Contains(strings.ToLower(c.FullName()), q) ||
			strings.Contains(strings.ToLower(c.PhoneNumber), q) {
			filtered = append(filtered, c)
		}
	}
	return filtered
}

func (s *ContactStore) backgroundFetch(subID int) {
	// deliberately not tied to the subscriber's context: a cancelled
	// subscriber must not abort a fetch other subscribers benefit from
	res := s.fetchAllShared(context.Background())
	if res.IsSuccess() {
		s.replaceAll(res.Value())
		return
	}

	logger.Log.Debug("background fetch failed, keeping cached contacts",
		zap.String("error", res.Message()))

	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.subs[subID]; ok {
		send(ch, s.snapshotLocked())
	}
}

// fetchAllShared collapses concurrent full fetches into one remote
// call.
func (s *ContactStore) fetchAllShared(ctx context.Context) result.Result[[]models.Contact] {
	v, _, _ := s.refresh.Do("fetch-all", func() (interface{}, error) {
		return s.remote.FetchAll(ctx), nil
	})
	return v.(result.Result[[]models.Contact])
}

func (s *ContactStore) replaceAll(contacts []models.Contact) []models.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.contacts = sortContacts(append([]models.Contact(nil), contacts...))
	s.notifyLocked()
	return s.snapshotLocked()
}

// upsert replaces the entry with a matching id in place, appending only
// when none exists; a blind append here would duplicate entries when an
// update result races a refresh.
func (s *ContactStore) upsert(contact models.Contact) {
	s.mu.Lock()
	defer s.mu.Unlock()

	replaced := false
	for i := range s.contacts {
		if s.contacts[i].ID == contact.ID {
			s.contacts[i] = contact
			replaced = true
			break
		}
	}
	if !replaced {
		s.contacts = append(s.contacts, contact)
	}

	s.contacts = sortContacts(s.contacts)
	s.notifyLocked()
}

func (s *ContactStore) remove(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := make([]models.Contact, 0, len(s.contacts))
	for _, c := range s.contacts {
		if c.ID != id {
			kept = append(kept, c)
		}
	}
	s.contacts = kept
	s.notifyLocked()
}

func (s *ContactStore) subscribeLocked() (int, chan []models.Contact) {
	id := s.nextSub
	s.nextSub++

	ch := make(chan []models.Contact, subscriberBuffer)
	s.subs[id] = ch
	return id, ch
}

func (s *ContactStore) watchCancel(ctx context.Context, id int) {
	<-ctx.Done()

	s.mu.Lock()
	defer s.mu.Unlock()
	if ch, ok := s.subs[id]; ok {
		delete(s.subs, id)
		close(ch)
	}
}

func (s *ContactStore) notifyLocked() {
	snapshot := s.snapshotLocked()
	for _, ch := range s.subs {
		send(ch, snapshot)
	}
}

func (s *ContactStore) snapshotLocked() []models.Contact {
	return append([]models.Contact(nil), s.contacts...)
}

func (s *ContactStore) findLocked(id string) *models.Contact {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			c := s.contacts[i]
			return &c
		}
	}
	return nil
}

// sortContacts orders by case-folded first name, stable so ties keep
// their insertion order.
func sortContacts(contacts []models.Contact) []models.Contact {
	sort.SliceStable(contacts, func(i, j int) bool {
		return strings.ToLower(contacts[i].FirstName) < strings.ToLower(contacts[j].FirstName)
	})
	return contacts
}

// send never blocks: when the buffer is full the oldest snapshot is
// dropped, so emissions stay in mutation order and the last one always
// arrives.
func send[T any](ch chan T, v T) {
	for {
		select {
		case ch <- v:
			return
		default:
			select {
			case <-ch:
			default:
			}
		}
	}
}
