package store

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/roach88/schedview/internal/model"
)

func TestIndex_PutRejectsDuplicates(t *testing.T) {
	ix := newIndex[string](2, nil)

	assert.True(t, ix.put(2, "b"))
	assert.True(t, ix.put(1, "a"))
	assert.False(t, ix.put(2, "again"))

	v, ok := ix.Get(2)
	assert.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, 2, ix.Len())
}

func TestIndex_OrderAndIteration(t *testing.T) {
	ix := newIndex[string](3, nil)
	ix.put(3, "c")
	ix.put(1, "a")
	ix.put(2, "b")

	assert.Equal(t, []model.ID{3, 1, 2}, ix.Keys())
	assert.Equal(t, []string{"c", "a", "b"}, ix.Values())

	var seen []model.ID
	for id := range ix.All() {
		seen = append(seen, id)
		if id == 1 {
			break
		}
	}
	assert.Equal(t, []model.ID{3, 1}, seen)
}

func TestIndex_KeysIsACopy(t *testing.T) {
	ix := newIndex[string](1, nil)
	ix.put(1, "a")

	keys := ix.Keys()
	keys[0] = 99

	assert.True(t, ix.Has(1))
	assert.False(t, ix.Has(99))
	assert.Equal(t, []model.ID{1}, ix.Keys())
}

func TestIndex_ReadsAreClones(t *testing.T) {
	ix := newIndex(1, model.Event.Clone)
	ix.put(1, model.Event{ID: 1, Categories: []model.ID{5}, Room: model.Ref(20), Speakers: []string{"Ada"}})

	got, ok := ix.Get(1)
	assert.True(t, ok)
	got.Categories[0] = 0
	*got.Room = 0
	got.Speakers[0] = "Eve"

	for _, ev := range ix.All() {
		ev.Categories[0] = 0
	}
	ix.Values()[0].Speakers[0] = "Mallory"

	want := model.Event{ID: 1, Categories: []model.ID{5}, Room: model.Ref(20), Speakers: []string{"Ada"}}
	again, _ := ix.Get(1)
	if diff := cmp.Diff(want, again); diff != "" {
		t.Errorf("index value was mutated through a read (-want +got):\n%s", diff)
	}
}
