package categories

// TechIndex assigns dense zero-based indices to technology-category labels
// in the order they are first seen.
//
// A TechIndex is built during a single catalog load and then only read.
type TechIndex struct {
	labels []string
	index  map[string]int
}

// NewTechIndex returns an empty index.
func NewTechIndex() *TechIndex {
	return &TechIndex{index: make(map[string]int)}
}

// Add returns the index of label, registering it if it has not been seen.
func (x *TechIndex) Add(label string) int {
	if i, ok := x.index[label]; ok {
		return i
	}
	i := len(x.labels)
	x.labels = append(x.labels, label)
	x.index[label] = i
	return i
}

// Index returns the index of label, or -1 if it was never added.
func (x *TechIndex) Index(label string) int {
	if i, ok := x.index[label]; ok {
		return i
	}
	return -1
}

// Labels returns the labels in discovery order.
func (x *TechIndex) Labels() []string {
	return append([]string(nil), x.labels...)
}

// Len returns the number of distinct labels.
func (x *TechIndex) Len() int {
	return len(x.labels)
}
