package datastores

import "iter"

const DefaultPageSize = 5

// ContactsInmem implements [ContactsStore].
// Records are kept in insertion order; it is not safe for concurrent use.
type ContactsInmem struct {
	index    map[string]int
	contacts []*Record
}

var _ ContactsStore = (*ContactsInmem)(nil)

func NewContactsInmem(rs ...*Record) *ContactsInmem {
	s := &ContactsInmem{index: make(map[string]int, len(rs))}
	for _, r := range rs {
		s.Put(r)
	}
	return s
}

// Put stores r under its name, replacing in place any record with the same name.
func (s *ContactsInmem) Put(r *Record) {
	index, ok := s.index[r.Name.Value]
	if ok {
		s.contacts[index] = r
		return
	}
	s.index[r.Name.Value] = len(s.contacts)
	s.contacts = append(s.contacts, r)
}

func (s *ContactsInmem) Get(name string) (*Record, error) {
	index, ok := s.index[name]
	if !ok {
		return nil, ErrObjectNotFound
	}
	return s.contacts[index], nil
}

func (s *ContactsInmem) Len() int { return len(s.contacts) }

func (s *ContactsInmem) List(offset, length int) []*Record {
	return s.contacts[min(offset, len(s.contacts)):min(offset+length, len(s.contacts))]
}

// Pages yields the records in pages of size, [DefaultPageSize] if size is not positive.
// The last page may be shorter and an empty store yields nothing.
// The returned sequence can be ranged over more than once.
func (s *ContactsInmem) Pages(size int) iter.Seq[[]*Record] {
	if size <= 0 {
		size = DefaultPageSize
	}
	return func(yield func([]*Record) bool) {
		for offset := 0; offset < len(s.contacts); offset += size {
			if !yield(s.List(offset, size)) {
				return
			}
		}
	}
}
