package listing

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type row struct {
	Name     string
	Category string
	Status   string
	Price    float64
}

func projectRow(r row) Fields {
	return Fields{
		Name:         r.Name,
		CategoryName: r.Category,
		CategoryCode: r.Category,
		StatusName:   r.Status,
		StatusCode:   r.Status,
	}
}

func TestFilterItems(t *testing.T) {
	items := []row{
		{Name: "Angle Grinder", Category: "POWER", Status: "ACTIVE"},
		{Name: "Hand Saw", Category: "HAND", Status: "ACTIVE"},
		{Name: "Ladder", Category: "ACCESS", Status: "CLOSED"},
	}

	t.Run("TextMatchIsCaseInsensitive", func(t *testing.T) {
		got := FilterItems(items, Filter{Text: "  GRINDER "}, projectRow)
		require.Len(t, got, 1)
		assert.Equal(t, "Angle Grinder", got[0].Name)
	})

	t.Run("TextMatchesStatusDisplayToo", func(t *testing.T) {
		got := FilterItems(items, Filter{Text: "closed"}, projectRow)
		require.Len(t, got, 1)
		assert.Equal(t, "Ladder", got[0].Name)
	})

	t.Run("EqualityFiltersCompareCodes", func(t *testing.T) {
		got := FilterItems(items, Filter{CategoryEquals: "HAND"}, projectRow)
		require.Len(t, got, 1)

		got = FilterItems(items, Filter{StatusEquals: "ACTIVE"}, projectRow)
		require.Len(t, got, 2)
	})

	t.Run("EmptyFilterMatchesAll", func(t *testing.T) {
		assert.Len(t, FilterItems(items, Filter{}, projectRow), 3)
	})
}

func TestSortItems(t *testing.T) {
	items := []row{{Price: 2}, {Price: 3}, {Price: 1}}
	byPrice := func(a, b row) int { return CompareNumbers(a.Price, b.Price) }

	asc := SortItems(items, byPrice, Ascending)
	assert.Equal(t, []float64{1, 2, 3}, prices(asc))

	desc := SortItems(items, byPrice, Descending)
	assert.Equal(t, []float64{3, 2, 1}, prices(desc))

	// Input slice is left untouched.
	assert.Equal(t, []float64{2, 3, 1}, prices(items))
}

func prices(items []row) []float64 {
	out := make([]float64, len(items))
	for i, r := range items {
		out[i] = r.Price
	}
	return out
}

func TestPaginate(t *testing.T) {
	items := make([]int, 25)
	for i := range items {
		items[i] = i
	}

	t.Run("FirstPage", func(t *testing.T) {
		page := Paginate(items, 1, 10)
		assert.Len(t, page.Items, 10)
		assert.Equal(t, 3, page.TotalPages)
		assert.Equal(t, 0, page.Items[0])
	})

	t.Run("LastPageIsShort", func(t *testing.T) {
		page := Paginate(items, 3, 10)
		assert.Len(t, page.Items, 5)
	})

	t.Run("OutOfRangeClampsToLast", func(t *testing.T) {
		page := Paginate(items, 99, 10)
		assert.Equal(t, 3, page.Number)
		assert.Len(t, page.Items, 5)
	})

	t.Run("ZeroAndNegativePagesClampToFirst", func(t *testing.T) {
		assert.Equal(t, 1, Paginate(items, 0, 10).Number)
		assert.Equal(t, 1, Paginate(items, -4, 10).Number)
	})

	t.Run("EmptyInputStillHasOnePage", func(t *testing.T) {
		page := Paginate([]int{}, 1, 10)
		assert.Equal(t, 1, page.TotalPages)
		assert.Empty(t, page.Items)
	})
}

func TestModelPipeline(t *testing.T) {
	newModel := func() *Model[row] {
		m := NewModel(10, projectRow)
		m.RegisterKey("name", Ascending, func(a, b row) int { return CompareNames(a.Name, b.Name) })
		m.RegisterKey("price", Descending, func(a, b row) int { return CompareNumbers(a.Price, b.Price) })
		return m
	}

	t.Run("FilterShrinksPageCount", func(t *testing.T) {
		// 12 items, 3 of which match: one page, any requested page clamps to 1.
		items := make([]row, 12)
		for i := range items {
			name := fmt.Sprintf("Tool %02d", i)
			if i < 3 {
				name = fmt.Sprintf("Drill %02d", i)
			}
			items[i] = row{Name: name, Status: "ACTIVE"}
		}

		m := newModel()
		m.SetPage(2)
		m.SetText("drill")

		page := m.Apply(items)
		assert.Equal(t, 1, page.TotalPages)
		assert.Equal(t, 1, page.Number)
		assert.Len(t, page.Items, 3)
	})

	t.Run("FilterChangeResetsPage", func(t *testing.T) {
		m := newModel()
		m.SetPage(3)
		m.SetStatus("ACTIVE")

		page := m.Apply([]row{{Name: "a", Status: "ACTIVE"}})
		assert.Equal(t, 1, page.Number)
	})

	t.Run("ToggleFlipsSameKey", func(t *testing.T) {
		m := newModel()
		name, dir := m.Sort()
		assert.Equal(t, "name", name, "first registered key is the initial sort")
		assert.Equal(t, Ascending, dir)

		m.ToggleSort("name")
		_, dir = m.Sort()
		assert.Equal(t, Descending, dir)

		m.ToggleSort("name")
		_, dir = m.Sort()
		assert.Equal(t, Ascending, dir)
	})

	t.Run("NewKeyStartsAtItsDefault", func(t *testing.T) {
		m := newModel()
		m.ToggleSort("name") // name now Descending
		m.ToggleSort("price")
		name, dir := m.Sort()
		assert.Equal(t, "price", name)
		assert.Equal(t, Descending, dir, "price keys default to descending")

		m.ToggleSort("name")
		name, dir = m.Sort()
		assert.Equal(t, "name", name)
		assert.Equal(t, Ascending, dir, "text keys default to ascending")
	})

	t.Run("UnknownKeyIgnored", func(t *testing.T) {
		m := newModel()
		m.ToggleSort("bogus")
		name, _ := m.Sort()
		assert.Equal(t, "name", name)
	})
}

func TestCompareNames(t *testing.T) {
	assert.Negative(t, CompareNames("alma", "banan"))
	assert.Positive(t, CompareNames("zebra", "alma"))
	assert.Zero(t, CompareNames("Alma", "alma"), "case is ignored")
}
