// ABOUTME: Tests for the Store: hydrate-or-default semantics, persist-after-apply,
// ABOUTME: malformed-state fallback, and tolerance of persistence failures.
package store

import (
	"encoding/json"
	"errors"
	"reflect"
	"testing"

	"github.com/brightpath-web/sitewright/content"
)

// memPersister is an in-memory Persister for tests.
type memPersister struct {
	data    []byte
	ok      bool
	saveErr error
	saves   int
}

func (p *memPersister) Load() ([]byte, bool, error) { return p.data, p.ok, nil }
func (p *memPersister) Save(data []byte) error {
	p.saves++
	if p.saveErr != nil {
		return p.saveErr
	}
	p.data = append([]byte(nil), data...)
	p.ok = true
	return nil
}
func (p *memPersister) Close() error { return nil }

func TestOpenDefaultsWhenEmpty(t *testing.T) {
	p := &memPersister{}

	s, err := Open(p)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	want := content.DefaultDocument()
	if !reflect.DeepEqual(s.Current(), want) {
		t.Error("empty persister did not hydrate the default document")
	}
	if p.saves == 0 {
		t.Error("default document was not persisted on first open")
	}
}

func TestOpenHydratesPersistedState(t *testing.T) {
	doc := content.DefaultDocument()
	doc.HomePage.Headline = "persisted headline"
	data, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	p := &memPersister{data: data, ok: true}

	s, err := Open(p)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if got := s.Current().HomePage.Headline; got != "persisted headline" {
		t.Errorf("Headline = %q, want persisted headline", got)
	}
}

func TestOpenMalformedFallsBackToDefault(t *testing.T) {
	p := &memPersister{data: []byte("{not json"), ok: true}

	s, err := Open(p)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if !reflect.DeepEqual(s.Current(), content.DefaultDocument()) {
		t.Error("malformed state did not fall back to the default document")
	}
}

func TestDispatchPersistsAndSwaps(t *testing.T) {
	p := &memPersister{}
	s, err := Open(p)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	before := s.Current()
	savesBefore := p.saves

	headline := "updated"
	doc, res, err := s.Dispatch(content.UpdateHomePageCommand{Headline: &headline})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if !res.Changed {
		t.Error("Changed = false, want true")
	}
	if doc.HomePage.Headline != "updated" {
		t.Errorf("Headline = %q, want updated", doc.HomePage.Headline)
	}
	if s.Current() != doc {
		t.Error("Current() does not return the applied document")
	}
	if before.HomePage.Headline == "updated" {
		t.Error("previous snapshot was mutated in place")
	}
	if p.saves != savesBefore+1 {
		t.Errorf("saves = %d, want %d", p.saves, savesBefore+1)
	}

	var persisted content.WebsiteDocument
	if err := json.Unmarshal(p.data, &persisted); err != nil {
		t.Fatalf("persisted blob invalid: %v", err)
	}
	if persisted.HomePage.Headline != "updated" {
		t.Error("persisted blob does not reflect the applied command")
	}
}

func TestDispatchErrorLeavesStateUntouched(t *testing.T) {
	p := &memPersister{}
	s, err := Open(p)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	before := s.Current()
	savesBefore := p.saves

	_, _, err = s.Dispatch(content.CreateBlogPostCommand{})
	if err == nil {
		t.Fatal("Dispatch() error = nil, want title-required error")
	}
	if s.Current() != before {
		t.Error("failed command advanced the document")
	}
	if p.saves != savesBefore {
		t.Error("failed command triggered a persist")
	}
}

func TestApplyAdvancesDespitePersistFailure(t *testing.T) {
	p := &memPersister{}
	s, err := Open(p)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	failures := 0
	SetPersistFailureHook(func() { failures++ })
	defer SetPersistFailureHook(func() {})

	p.saveErr = errors.New("disk full")
	headline := "survives"
	doc, _, err := s.Dispatch(content.UpdateHomePageCommand{Headline: &headline})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if doc.HomePage.Headline != "survives" {
		t.Error("in-memory document did not advance past a persist failure")
	}
	if s.Current() != doc {
		t.Error("Current() does not reflect the applied document")
	}
	if failures != 1 {
		t.Errorf("failure hook calls = %d, want 1", failures)
	}
}

func TestOnApplyHookRuns(t *testing.T) {
	p := &memPersister{}
	s, err := Open(p)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	var seen *content.WebsiteDocument
	s.OnApply(func(doc *content.WebsiteDocument) { seen = doc })

	headline := "hooked"
	doc, _, err := s.Dispatch(content.UpdateHomePageCommand{Headline: &headline})
	if err != nil {
		t.Fatalf("Dispatch() error = %v", err)
	}
	if seen != doc {
		t.Error("apply hook did not receive the new document")
	}
}
