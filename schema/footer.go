package schema

// FooterField maps a float header field to its double-precision slot in
// the v7 footer. The footer value is authoritative; the float32 header
// copy is kept for layout compatibility.
type FooterField struct {
	// Name is the header field the slot shadows ("delta", "t3", ...).
	Name string
	// Index is the slot position within the footer.
	Index int
	// Offset is the byte offset of the slot relative to the footer start.
	Offset int
}

// footerNames lists the footer slots in layout order.
var footerNames = [FooterFields]string{
	"delta", "b", "e", "o", "a",
	"t0", "t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9",
	"f",
	"evlo", "evla", "stlo", "stla",
	"sb", "sdelta",
}

var (
	footerFields = func() []FooterField {
		fields := make([]FooterField, FooterFields)
		for i, name := range footerNames {
			fields[i] = FooterField{Name: name, Index: i, Offset: i * 8}
		}

		return fields
	}()

	footerByName = func() map[string]FooterField {
		m := make(map[string]FooterField, FooterFields)
		for _, f := range footerFields {
			m[f.Name] = f
		}

		return m
	}()
)

// Footer returns the footer slots in layout order. The returned slice is
// shared; callers must not modify it.
func Footer() []FooterField {
	return footerFields
}

// FooterLookup returns the footer slot shadowing the named header field,
// if one exists.
func FooterLookup(name string) (FooterField, bool) {
	f, ok := footerByName[name]
	return f, ok
}

// HasFooterSlot reports whether the named header field has a
// double-precision footer counterpart.
func HasFooterSlot(name string) bool {
	_, ok := footerByName[name]
	return ok
}
