// Package records defines the plain data types shown by the record demo.
package records

// Address is the postal block nested in Person.
type Address struct {
	Street string
	City   string
	Zip    string
}

// Person is a record with a nested sub-record.
type Person struct {
	Name    string
	Age     int
	Salary  float32
	Address Address
}

// Node is a doubly-linked list node.
type Node struct {
	Data int
	Next *Node
	Prev *Node
}

// NewNode returns an unlinked node holding data.
func NewNode(data int) *Node {
	return &Node{Data: data}
}

// InsertAfter links m directly after n and returns m.
func (n *Node) InsertAfter(m *Node) *Node {
	m.Prev = n
	m.Next = n.Next
	if n.Next != nil {
		n.Next.Prev = m
	}
	n.Next = m
	return m
}
