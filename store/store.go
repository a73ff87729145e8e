// ABOUTME: Store owns the live WebsiteDocument: hydrate-or-default load, snapshot reads,
// ABOUTME: and synchronous persist-after-apply. Malformed persisted state is treated as absent.
package store

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/brightpath-web/sitewright/content"
)

// Persister stores the whole document as one serialized blob under a single
// well-known key. Load returns ok=false when no blob exists.
type Persister interface {
	Load() (data []byte, ok bool, err error)
	Save(data []byte) error
	Close() error
}

// Store holds the live document. Readers get consistent snapshots: the
// document pointer is swapped wholesale under the lock, never mutated in
// place, so a reader can never observe a partially-applied mutation.
type Store struct {
	mu        sync.RWMutex
	doc       *content.WebsiteDocument
	persister Persister

	// onApply hooks run synchronously after each successful apply with the
	// new document. The composition root registers projection refreshes here.
	onApply []func(*content.WebsiteDocument)
}

// Open constructs a Store hydrated from the persister. Missing or malformed
// persisted state silently falls back to the built-in default document; Open
// fails only when the persister itself is unusable.
func Open(p Persister) (*Store, error) {
	s := &Store{persister: p}

	data, ok, err := p.Load()
	if err != nil {
		return nil, err
	}

	if ok {
		var doc content.WebsiteDocument
		if jsonErr := json.Unmarshal(data, &doc); jsonErr != nil {
			log.Printf("component=store action=load_malformed_fallback_default err=%v", jsonErr)
		} else {
			s.doc = &doc
		}
	}
	if s.doc == nil {
		s.doc = content.DefaultDocument()
		// Persist the default so the blob exists from first run onward.
		s.persist(s.doc)
	}

	return s, nil
}

// OnApply registers a hook invoked after every successful apply. Not safe to
// call concurrently with Apply; register hooks at composition time.
func (s *Store) OnApply(fn func(*content.WebsiteDocument)) {
	s.onApply = append(s.onApply, fn)
}

// Current returns the live document snapshot. Callers must treat it as
// immutable; mutations go through Apply.
func (s *Store) Current() *content.WebsiteDocument {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}

// Apply runs a mutation against the current document, swaps in its result,
// and persists synchronously before returning. When persistence fails the
// in-memory document still advances: the failure is logged, not surfaced.
func (s *Store) Apply(mutation func(*content.WebsiteDocument) (*content.WebsiteDocument, error)) (*content.WebsiteDocument, error) {
	s.mu.Lock()
	next, err := mutation(s.doc)
	if err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.doc = next
	s.mu.Unlock()

	s.persist(next)

	for _, fn := range s.onApply {
		fn(next)
	}
	return next, nil
}

// Dispatch applies a single editor command through Apply.
func (s *Store) Dispatch(cmd content.Command) (*content.WebsiteDocument, content.ApplyResult, error) {
	var res content.ApplyResult
	doc, err := s.Apply(func(d *content.WebsiteDocument) (*content.WebsiteDocument, error) {
		next, r, applyErr := content.Apply(d, cmd)
		if applyErr != nil {
			return nil, applyErr
		}
		res = r
		return next, nil
	})
	if err != nil {
		return nil, content.ApplyResult{}, err
	}
	return doc, res, nil
}

// Close releases the underlying persister.
func (s *Store) Close() error {
	return s.persister.Close()
}

func (s *Store) persist(doc *content.WebsiteDocument) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		log.Printf("component=store action=persist_marshal_failed err=%v", err)
		onPersistFailure()
		return
	}
	if err := s.persister.Save(data); err != nil {
		log.Printf("component=store action=persist_failed err=%v", err)
		onPersistFailure()
	}
}

// onPersistFailure is a hook for counting persistence failures; the web layer
// points it at a metrics counter.
var onPersistFailure = func() {}

// SetPersistFailureHook installs the persistence-failure callback.
func SetPersistFailureHook(fn func()) {
	if fn != nil {
		onPersistFailure = fn
	}
}
