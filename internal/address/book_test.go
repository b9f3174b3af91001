package address

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rosegold_back_end/internal/models"
)

func draft(name string) models.AddressDraft {
	return models.AddressDraft{
		Name:    name,
		Phone:   "9000000000",
		Street:  "1 Rose Lane",
		City:    "Pune",
		State:   "Maharashtra",
		Pincode: "411001",
	}
}

func defaults(b *Book) []int {
	var out []int
	for _, a := range b.List() {
		if a.IsDefault {
			out = append(out, a.ID)
		}
	}
	return out
}

func TestBook_FirstAddressBecomesDefault(t *testing.T) {
	b := NewBook(nil)

	first := b.Add(draft("A"))
	second := b.Add(draft("B"))

	assert.Equal(t, 1, first.ID)
	assert.True(t, first.IsDefault)
	assert.Equal(t, 2, second.ID)
	assert.False(t, second.IsDefault)
}

func TestBook_IDsFollowMax(t *testing.T) {
	b := NewBook(SampleAddresses())
	b.Add(draft("A"))
	require.True(t, b.Delete(1))

	created := b.Add(draft("B"))

	assert.Equal(t, 3, created.ID)
}

func TestBook_Update(t *testing.T) {
	b := NewBook(SampleAddresses())
	city := "Pune"

	updated, ok := b.Update(1, models.AddressPatch{City: &city})
	require.True(t, ok)
	assert.Equal(t, "Pune", updated.City)
	assert.Equal(t, "GSK", updated.Name)
	assert.True(t, updated.IsDefault)

	_, ok = b.Update(42, models.AddressPatch{City: &city})
	assert.False(t, ok)
}

func TestBook_SetDefaultKeepsExactlyOne(t *testing.T) {
	b := NewBook(SampleAddresses())
	b.Add(draft("A"))
	b.Add(draft("B"))

	require.True(t, b.SetDefault(3))
	assert.Equal(t, []int{3}, defaults(b))

	assert.False(t, b.SetDefault(99))
	assert.Equal(t, []int{3}, defaults(b))

	def, ok := b.Default()
	require.True(t, ok)
	assert.Equal(t, "B", def.Name)
}

func TestBook_DeletingDefaultLeavesNone(t *testing.T) {
	b := NewBook(SampleAddresses())
	b.Add(draft("A"))

	require.True(t, b.Delete(1))
	assert.False(t, b.Delete(1))

	assert.Empty(t, defaults(b))
	_, ok := b.Default()
	assert.False(t, ok)
	require.Len(t, b.List(), 1)
}

func TestBook_SnapshotsAreStable(t *testing.T) {
	b := NewBook(SampleAddresses())
	before := b.List()

	b.Add(draft("A"))
	b.SetDefault(2)

	require.Len(t, before, 1)
	assert.True(t, before[0].IsDefault)
	_, ok := b.Get(2)
	assert.True(t, ok)
}
