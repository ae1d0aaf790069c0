package store

import (
	"reflect"
	"sync"
	"testing"

	"github.com/preston-bernstein/player-lookup/internal/domain/players"
	"github.com/preston-bernstein/player-lookup/internal/testutil"
)

func TestResultStoreStartsEmpty(t *testing.T) {
	if list := NewResultStore().List(); list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", list)
	}
}

func TestResultStoreKeepsOrder(t *testing.T) {
	s := NewResultStore()
	roster := testutil.SampleRoster()
	s.Replace(roster)

	if !reflect.DeepEqual(s.List(), roster) {
		t.Fatalf("expected list to match input order")
	}
}

func TestResultStoreKeepsDuplicates(t *testing.T) {
	s := NewResultStore()
	s.Replace([]players.Player{
		{PlayerID: "dup", NameFirst: "first"},
		{PlayerID: "dup", NameFirst: "second"},
	})

	list := s.List()
	if len(list) != 2 || list[0].NameFirst != "first" || list[1].NameFirst != "second" {
		t.Fatalf("expected both duplicates in order, got %#v", list)
	}
}

func TestResultStoreReplaceDropsOldSet(t *testing.T) {
	s := NewResultStore()
	s.Replace([]players.Player{{PlayerID: "old"}})
	s.Replace([]players.Player{{PlayerID: "new"}})

	list := s.List()
	if len(list) != 1 || list[0].PlayerID != "new" {
		t.Fatalf("expected only the new player after replace, got %#v", list)
	}
}

func TestResultStoreClear(t *testing.T) {
	s := NewResultStore()
	s.Replace(testutil.SampleRoster())
	s.Clear()

	if list := s.List(); list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", list)
	}
}

func TestResultStoreCopiesOnReadAndWrite(t *testing.T) {
	s := NewResultStore()
	input := []players.Player{{PlayerID: "copy", NameFirst: "original"}}
	s.Replace(input)

	input[0].NameFirst = "mutated-input"
	list := s.List()
	list[0].NameFirst = "mutated-list"

	if got := s.List()[0].NameFirst; got != "original" {
		t.Fatalf("expected store to remain unchanged, got %s", got)
	}
}

func TestResultStoreConcurrentAccess(t *testing.T) {
	s := NewResultStore()
	roster := testutil.SampleRoster()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			s.Replace(roster)
		}()
		go func() {
			defer wg.Done()
			_ = s.List()
		}()
	}
	wg.Wait()

	if got := len(s.List()); got != len(roster) {
		t.Fatalf("expected %d players after concurrent replaces, got %d", len(roster), got)
	}
}
