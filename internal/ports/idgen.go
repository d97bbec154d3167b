package ports

// IDGenerator supplies globally-unique identifier strings. It is called once
// per created chapter and once per created sub-chapter.
type IDGenerator interface {
	NewID() string
}
