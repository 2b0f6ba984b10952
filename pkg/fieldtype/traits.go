package fieldtype

// IsRelational reports whether values of t are references to other elements.
func (t FieldType) IsRelational() bool {
	switch t {
	case Assets, Categories, Entries, Tags, Users:
		return true
	}
	return false
}

// HasOptions reports whether t picks from a fixed list of options.
func (t FieldType) HasOptions() bool {
	switch t {
	case Checkboxes, Dropdown, MultiSelect, RadioButtons:
		return true
	}
	return false
}

// IsMultiValue reports whether values of t are iterable collections.
func (t FieldType) IsMultiValue() bool {
	if t.IsRelational() {
		return true
	}
	switch t {
	case Checkboxes, MultiSelect, Matrix, SuperTable, Table:
		return true
	}
	return false
}

// IsTextLike reports whether values of t serialise as a single string.
func (t FieldType) IsTextLike() bool {
	switch t {
	case PlainText, Email, URL, Color, Redactor, Country, Embed, Blurhash:
		return true
	}
	return false
}

// Traits lists the derived flags that hold for t, in a stable order.
func (t FieldType) Traits() []string {
	var out []string
	if t.IsRelational() {
		out = append(out, "relational")
	}
	if t.HasOptions() {
		out = append(out, "options")
	}
	if t.IsMultiValue() {
		out = append(out, "multi")
	}
	if t.IsTextLike() {
		out = append(out, "text")
	}
	return out
}
