package listing

// SortKey is one registered sortable column: its ascending compare and the
// direction it starts in when first selected. Text keys default ascending,
// date and price keys descending.
type SortKey[T any] struct {
	Compare func(a, b T) int
	Default Direction
}

// Model drives the pipeline for one view: it owns the filter, the active
// sort and the page number, and applies them to whatever item slice the
// view holds. The model performs no I/O.
type Model[T any] struct {
	project  func(T) Fields
	keys     map[string]SortKey[T]
	filter   Filter
	sortName string
	dir      Direction
	page     int
	pageSize int
}

// NewModel creates a pipeline model. project produces the filterable
// fields of an item; pageSize is the fixed page length.
func NewModel[T any](pageSize int, project func(T) Fields) *Model[T] {
	return &Model[T]{
		project:  project,
		keys:     make(map[string]SortKey[T]),
		page:     1,
		pageSize: pageSize,
	}
}

// RegisterKey adds a sortable column. The first registered key becomes the
// initial sort.
func (m *Model[T]) RegisterKey(name string, def Direction, compare func(a, b T) int) {
	m.keys[name] = SortKey[T]{Compare: compare, Default: def}
	if m.sortName == "" {
		m.sortName = name
		m.dir = def
	}
}

// SetText updates the search text and resets to the first page.
func (m *Model[T]) SetText(text string) {
	m.filter.Text = text
	m.page = 1
}

// SetCategory updates the category filter and resets to the first page.
// The empty code clears the filter.
func (m *Model[T]) SetCategory(code string) {
	m.filter.CategoryEquals = code
	m.page = 1
}

// SetStatus updates the status filter and resets to the first page. The
// empty code clears the filter.
func (m *Model[T]) SetStatus(code string) {
	m.filter.StatusEquals = code
	m.page = 1
}

// ToggleSort selects a sort column. Re-selecting the active column flips
// its direction; a new column starts at its registered default. Either way
// the view snaps back to the first page. Unknown names are ignored.
func (m *Model[T]) ToggleSort(name string) {
	key, ok := m.keys[name]
	if !ok {
		return
	}
	if m.sortName == name {
		m.dir = m.dir.Toggle()
	} else {
		m.sortName = name
		m.dir = key.Default
	}
	m.page = 1
}

// Sort returns the active sort column and direction.
func (m *Model[T]) Sort() (string, Direction) {
	return m.sortName, m.dir
}

// SetPage requests a page; Apply clamps it to the valid range.
func (m *Model[T]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	m.page = page
}

// Apply runs filter, sort and paginate over items.
func (m *Model[T]) Apply(items []T) Page[T] {
	filtered := FilterItems(items, m.filter, m.project)
	if key, ok := m.keys[m.sortName]; ok {
		filtered = SortItems(filtered, key.Compare, m.dir)
	}
	return Paginate(filtered, m.page, m.pageSize)
}
